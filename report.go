package edid

import (
	"fmt"
	"strings"
)

const cmPerInch = 2.54

// Describe renders a six line summary of a base block: two identity lines
// followed by one line per descriptor.
func Describe(b []byte) (string, error) {
	if err := need(b, "base block", BlockSize); err != nil {
		return "", err
	}
	manufacturer, err := manufacturerLabel(b)
	if err != nil {
		return "", err
	}
	descs, err := Descriptors(b)
	if err != nil {
		return "", err
	}
	// the length check above covers every remaining accessor
	product, _ := ProductID(b)
	serial, _ := SerialNumber(b)
	week, _ := Week(b)
	year, _ := Year(b)
	version, _ := Version(b)
	digital, _ := IsDigital(b)
	hcm, _ := HorizontalSizeCm(b)
	vcm, _ := VerticalSizeCm(b)

	input := "Analog"
	if digital {
		input = "Digital"
	}

	lines := make([]string, 0, 2+DescriptorCount)
	lines = append(lines,
		fmt.Sprintf("  Manuf. ID=%s, Product ID=%s, Serial=%s, ManufDate=%d/%d", manufacturer, product, serial, week, year),
		fmt.Sprintf("  EDID v%s, %s, %d x %d cm (%.1f x %.1f in)", version, input, hcm, vcm, float64(hcm)/cmPerInch, float64(vcm)/cmPerInch),
	)
	preferred := true
	for i := range descs {
		v := Classify(&descs[i])
		label := v.Kind().String()
		if v.Kind() == KindDetailedTiming && preferred {
			label = "Preferred Timing"
			preferred = false
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", label, v.Summary()))
	}
	return strings.Join(lines, "\n"), nil
}
