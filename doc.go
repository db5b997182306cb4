/*
Package cfprep prepares grayscale frames for correlation-filter trackers.

A frame is log-compressed, normalized to zero mean and unit norm, and tapered
by a cosine window so it can be correlated in the frequency domain without
ringing at the borders:

	crop, err := cfprep.Crop(frame, 64, 64, image.Pt(120, 80))
	if err != nil {
		return err
	}
	features, err := cfprep.Preprocess(crop)

Generator synthesizes rotated and scaled copies of the initial sample, each of
which can go through the same pipeline to train a more robust filter:

	gen := cfprep.NewGenerator(cfprep.AugmentOptions{})
	for v, err := range gen.All(crop) {
		...
	}
*/
package cfprep
