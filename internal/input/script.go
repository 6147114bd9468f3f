package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Script is a pin that replays a press schedule. Each Get call is one frame;
// frames are numbered from 1.
type Script struct {
	ranges [][2]int
	frame  int
}

// ParseScript reads a schedule such as "3,10-14". An empty string never presses.
func ParseScript(s string) (*Script, error) {
	sc := &Script{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, found := strings.Cut(part, "-")
		first, err := strconv.Atoi(lo)
		if err != nil || first < 1 {
			return nil, fmt.Errorf("bad frame %q in script %q", lo, s)
		}
		last := first
		if found {
			last, err = strconv.Atoi(hi)
			if err != nil || last < first {
				return nil, fmt.Errorf("bad range %q in script %q", part, s)
			}
		}
		sc.ranges = append(sc.ranges, [2]int{first, last})
	}
	return sc, nil
}

// Get advances one frame and reports a low line while the schedule holds the
// button down.
func (s *Script) Get() (bool, error) {
	s.frame++
	for _, r := range s.ranges {
		if s.frame >= r[0] && s.frame <= r[1] {
			return false, nil
		}
	}
	return true, nil
}
