package dotcanvas

import "image"

// OtsuThreshold computes the binarization cutoff that maximizes the
// inter-class variance between the two pixel classes of the image's
// histogram. An empty image yields 128.
func OtsuThreshold(img *image.Gray) uint8 {
	var hist [256]int
	total := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
			total++
		}
	}
	if total == 0 {
		return 128
	}

	var sum float64
	for v, n := range hist {
		sum += float64(v) * float64(n)
	}

	var sumBack, weightBack float64
	var best int
	var bestVar float64
	for t := 0; t < 256; t++ {
		weightBack += float64(hist[t])
		if weightBack == 0 {
			continue
		}
		weightFore := float64(total) - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(t) * float64(hist[t])
		meanBack := sumBack / weightBack
		meanFore := (sum - sumBack) / weightFore
		diff := meanBack - meanFore
		between := weightBack * weightFore * diff * diff
		if between > bestVar {
			bestVar = between
			best = t
		}
	}
	if bestVar == 0 {
		// Single-class image; fall back to the midpoint.
		return 128
	}
	// best is the last histogram level of the dark class; the cutoff is
	// exclusive (pixel inks iff luma < cutoff), so step past it.
	if best >= 254 {
		return 255
	}
	return uint8(best + 1)
}
