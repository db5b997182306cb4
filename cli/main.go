package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/esimov/cfprep"
	"github.com/esimov/cfprep/debugplot"
	"github.com/esimov/cfprep/opencv"
)

const banner = `
┌─┐┌─┐┌─┐┬─┐┌─┐┌─┐
│  ├┤ ├─┘├┬┘├┤ ├─┘
└─┘└  ┴  ┴└─└─┘┴

Correlation filter frame preprocessing
    Version: %s

`

// Version indicates the current build version.
var Version string

func main() {
	var (
		source      = flag.String("in", "", "Source image")
		destination = flag.String("out", "out", "Destination directory")
		centerX     = flag.Int("cx", -1, "Crop window center x (-1 for frame center)")
		centerY     = flag.Int("cy", -1, "Crop window center y (-1 for frame center)")
		winWidth    = flag.Int("w", 0, "Crop window width (0 disables cropping)")
		winHeight   = flag.Int("h", 0, "Crop window height (0 disables cropping)")
		workers     = flag.Int("workers", runtime.NumCPU(), "Number of preprocessing workers")
		augment     = flag.Bool("aug", false, "Write rotated and scaled training frames")
		backend     = flag.String("backend", "go", "Augmentation backend: go or opencv")
		heatmap     = flag.String("heatmap", "", "Write a heatmap of the feature vector to this file")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, banner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*source) == 0 {
		log.Fatal("Usage: cfprep -in <source> -out <directory>")
	}

	fileTypes := []string{".jpg", ".jpeg", ".png"}
	if ext := filepath.Ext(*source); !supportedFiles(ext, fileTypes) {
		log.Fatalf("Input file type not supported: %v", ext)
	}

	var warper cfprep.Warper
	switch *backend {
	case "go":
		warper = cfprep.NearestWarper{}
	case "opencv":
		warper = opencv.Warper{}
	default:
		log.Fatalf("unknown backend: %q", *backend)
	}

	frame, err := opencv.Read(*source)
	if err != nil {
		log.Fatalf("cannot read source image: %v", err)
	}
	sink := opencv.Sink{Dir: *destination}

	if *winWidth > 0 && *winHeight > 0 {
		b := frame.Bounds()
		center := image.Pt(b.Dx()/2, b.Dy()/2)
		if *centerX >= 0 {
			center.X = *centerX
		}
		if *centerY >= 0 {
			center.Y = *centerY
		}
		frame, err = cfprep.Crop(frame, *winWidth, *winHeight, center)
		if err != nil {
			log.Fatalf("cannot crop frame: %v", err)
		}
	}
	width, height := frame.Bounds().Dx(), frame.Bounds().Dy()

	e := newEvent(os.Stdout, "Preprocess")
	e.start()
	pp := cfprep.NewPreprocessor(cfprep.Options{Workers: *workers})
	features, err := pp.Preprocess(frame)
	e.stop()
	if err != nil {
		log.Fatalf("cannot preprocess frame: %v", err)
	}

	preview, err := cfprep.ToFrame(cfprep.Rescale(features), width, height)
	if err != nil {
		log.Fatalf("cannot convert feature vector: %v", err)
	}
	if err := sink.Put("features.png", preview); err != nil {
		log.Fatalf("error saving the feature preview: %v", err)
	}

	if len(*heatmap) > 0 {
		e = newEvent(os.Stdout, "Heatmap")
		e.start()
		err = debugplot.Heatmap(features, width, height, filepath.Base(*source), *heatmap)
		e.stop()
		if err != nil {
			log.Fatalf("error saving the heatmap: %v", err)
		}
	}

	if *augment {
		e = newEvent(os.Stdout, "Augment")
		e.start()
		gen := cfprep.NewGenerator(cfprep.AugmentOptions{Warper: warper, Sink: sink})
		count := 0
		for _, err := range gen.All(frame) {
			if err != nil {
				log.Printf("augment: %v", err)
				continue
			}
			count++
		}
		e.stop()
		log.Printf("wrote %d training frames to %s", count, *destination)
	}
}

// supportedFiles checks if the provided file extension is supported.
func supportedFiles(ext string, types []string) bool {
	for _, t := range types {
		if t == ext {
			return true
		}
	}
	return false
}
