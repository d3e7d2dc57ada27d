package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToHSL converts "#RGB" or "#RRGGBB" to an "H S% L%" triplet. Hue is
// rounded to the nearest degree, saturation and lightness to a tenth of
// a percentage point. One pass of rounding is applied, so converting an
// already-converted value again yields the same string.
func HexToHSL(hex string) (string, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return "", err
	}

	cmin := math.Min(r, math.Min(g, b))
	cmax := math.Max(r, math.Max(g, b))
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h = math.Round(h * 60)
	if h < 0 {
		h += 360
	}

	l := (cmax + cmin) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	// int() also folds the negative zero math.Round produces when a
	// red-dominant hue rounds up to zero.
	return fmt.Sprintf("%d %s%% %s%%",
		int(h),
		formatPct(s*100),
		formatPct(l*100),
	), nil
}

// HSLToHex converts an "H S% L%" triplet to "#rrggbb".
func HSLToHex(hsl string) (string, error) {
	parts := strings.Fields(hsl)
	if len(parts) != 3 {
		return "", &ValidationError{Msg: fmt.Sprintf("malformed HSL value %q", hsl)}
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return "", &ValidationError{Msg: fmt.Sprintf("malformed HSL value %q", hsl)}
		}
		vals[i] = v
	}
	h, s, l := vals[0]/360, vals[1]/100, vals[2]/100

	var r, g, b float64
	if s == 0 {
		// achromatic
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)),
	), nil
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func parseHex(hex string) (r, g, b float64, err error) {
	bad := func() (float64, float64, float64, error) {
		return 0, 0, 0, &ValidationError{Msg: fmt.Sprintf("malformed hex color %q", hex)}
	}
	if !strings.HasPrefix(hex, "#") {
		return bad()
	}
	var chans [3]float64
	switch len(hex) {
	case 4:
		for i := 0; i < 3; i++ {
			c := hex[1+i : 2+i]
			n, perr := strconv.ParseUint(c+c, 16, 8)
			if perr != nil {
				return bad()
			}
			chans[i] = float64(n) / 255
		}
	case 7:
		for i := 0; i < 3; i++ {
			n, perr := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
			if perr != nil {
				return bad()
			}
			chans[i] = float64(n) / 255
		}
	default:
		return bad()
	}
	return chans[0], chans[1], chans[2], nil
}

// formatPct renders a percentage rounded to one decimal, trimming a
// trailing ".0" ("65" rather than "65.0", but "3.9" stays).
func formatPct(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
