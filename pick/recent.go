package pick

import (
	"fmt"
	"strconv"
	"strings"
)

const maxRecentColors = 20

// recentSeparator joins serialized entries. Three characters so it can never
// collide with the in-entry dash separator.
const recentSeparator = ",,,"

// recentColors is the bounded list of previously chosen colors, newest last.
type recentColors struct {
	colors []Color
}

// append adds c unless it is already present, then drops the oldest entries
// beyond the cap.
func (rc *recentColors) append(c Color) {
	for _, have := range rc.colors {
		if have == c {
			return
		}
	}
	rc.colors = append(rc.colors, c)
	if len(rc.colors) > maxRecentColors {
		rc.colors = append([]Color(nil), rc.colors[len(rc.colors)-maxRecentColors:]...)
	}
}

func (rc *recentColors) mostRecent() (Color, bool) {
	if len(rc.colors) == 0 {
		return Color{}, false
	}
	return rc.colors[len(rc.colors)-1], true
}

func (rc *recentColors) at(i int) (Color, bool) {
	if i < 0 || i >= len(rc.colors) {
		return Color{}, false
	}
	return rc.colors[i], true
}

// serialize renders every entry as "R-G-B-A" joined by recentSeparator.
func (rc *recentColors) serialize() string {
	parts := make([]string, 0, len(rc.colors))
	for _, c := range rc.colors {
		parts = append(parts, fmt.Sprintf("%d-%d-%d-%d", c.R, c.G, c.B, c.A))
	}
	return strings.Join(parts, recentSeparator)
}

// parseRecentColors restores a serialized list. Entries are either the dashed
// "R-G-B-A" form or, for values persisted by older versions, a bare decimal
// packed RGB integer. Malformed entries are skipped; the rest still load.
func parseRecentColors(s string) []Color {
	if s == "" {
		return nil
	}
	var out []Color
	for _, entry := range strings.Split(s, recentSeparator) {
		if strings.Contains(entry, "-") {
			comps := strings.Split(entry, "-")
			if len(comps) != 4 {
				continue
			}
			var vals [4]uint8
			ok := true
			for i, comp := range comps {
				v, err := strconv.Atoi(comp)
				if err != nil || v < 0 || v > 255 {
					ok = false
					break
				}
				vals[i] = uint8(v)
			}
			if !ok {
				continue
			}
			out = append(out, NewColor(vals[0], vals[1], vals[2], vals[3]))
		} else {
			v, err := strconv.Atoi(entry)
			if err != nil {
				continue
			}
			out = append(out, NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255))
		}
	}
	return out
}
