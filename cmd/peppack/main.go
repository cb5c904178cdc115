// Command peppack is the reference command-line driver for the pep codec:
// demo raster generation, raw-RGBA conversion, platform-image ingestion,
// dry-run decode benchmarking, and BMP / RLE8-BMP export.
//
// Usage:
//
//	peppack demo [-out path] [-w N] [-h N]
//	peppack convert -in raw.rgba -w N -h N [-fmt RGBA|BGRA|ABGR|ARGB] -out out.pep
//	peppack ingest -in image.png|.tiff -out out.pep
//	peppack bench [-in out.pep] [-n N] [-scale N]
//	peppack export -in out.pep -out out.bmp [-rle8]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"time"

	bmp "github.com/sergeymakinen/go-bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/deepteams/pep"
	"github.com/deepteams/pep/internal/reformat"
)

var logger = log.New(os.Stderr, "peppack: ", 0)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "demo":
		err = runDemo(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "ingest":
		err = runIngest(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "peppack: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Println(err)
		os.Exit(exitCodeFor(err))
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  peppack demo [-out path] [-w N] [-h N]
  peppack convert -in raw.rgba -w N -h N [-fmt RGBA|BGRA|ABGR|ARGB] -out out.pep
  peppack ingest -in image.png|.tiff -out out.pep
  peppack bench [-in out.pep] [-n N] [-scale N]
  peppack export -in out.pep -out out.bmp [-rle8]
`)
}

// usageError marks a flag/argument problem, exit code 1.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }

// codecError marks a compress/decompress failure, exit code 2.
type codecError struct{ err error }

func (e codecError) Error() string { return e.err.Error() }

func exitCodeFor(err error) int {
	switch err.(type) {
	case usageError:
		return 1
	case codecError:
		return 2
	default:
		return 3
	}
}

// --- demo ---

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	out := fs.String("out", "demo.pep", "output .pep path")
	w := fs.Int("w", 32, "raster width")
	h := fs.Int("h", 32, "raster height")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}

	pixels := gradientRaster(*w, *h)
	img, err := pep.Compress(pixels, *w, *h, reformat.RGBA, reformat.RGBA)
	if err != nil {
		return codecError{err}
	}
	if err := pep.Save(img, *out); err != nil {
		return err
	}
	logger.Printf("wrote %s (%d colors, %d payload bytes)", *out, img.PaletteSize, len(img.Payload))
	return nil
}

// gradientRaster builds the scenario-3 demo gradient: r=x*8, g=y*8,
// b=(x>>3)^(y>>3)?32:200, a=255.
func gradientRaster(w, h int) []uint32 {
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := byte(x * 8)
			g := byte(y * 8)
			var b byte
			if (x>>3)^(y>>3) != 0 {
				b = 32
			} else {
				b = 200
			}
			pixels[y*w+x] = uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF
		}
	}
	return pixels
}

// --- convert ---

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	in := fs.String("in", "", "input raw RGBA path")
	out := fs.String("out", "", "output .pep path")
	w := fs.Int("w", 0, "raster width")
	h := fs.Int("h", 0, "raster height")
	fmtName := fs.String("fmt", "RGBA", "input channel order: RGBA/BGRA/ABGR/ARGB")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	if *in == "" || *out == "" || *w <= 0 || *h <= 0 {
		return usageError{fmt.Errorf("convert: -in, -out, -w, and -h are required")}
	}
	inFmt, ok := reformat.Parse(*fmtName)
	if !ok {
		return usageError{fmt.Errorf("convert: unknown -fmt %q", *fmtName)}
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	if len(raw) != *w**h*4 {
		return usageError{fmt.Errorf("convert: %d bytes does not match %dx%d raster", len(raw), *w, *h)}
	}
	pixels := make([]uint32, *w**h)
	for i := range pixels {
		o := i * 4
		pixels[i] = uint32(raw[o])<<24 | uint32(raw[o+1])<<16 | uint32(raw[o+2])<<8 | uint32(raw[o+3])
	}

	img, err := pep.Compress(pixels, *w, *h, inFmt, inFmt)
	if err != nil {
		return codecError{err}
	}
	if err := pep.Save(img, *out); err != nil {
		return err
	}
	logger.Printf("wrote %s (%d colors, %d payload bytes)", *out, img.PaletteSize, len(img.Payload))
	return nil
}

// --- ingest ---

func runIngest(args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	in := fs.String("in", "", "input .png or .tiff path")
	out := fs.String("out", "", "output .pep path")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	if *in == "" || *out == "" {
		return usageError{fmt.Errorf("ingest: -in and -out are required")}
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	src, decErr := decodePlatformImage(f)
	if decErr != nil {
		return decErr
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = uint32(r>>8)<<24 | uint32(g>>8)<<16 | uint32(b>>8)<<8 | uint32(a>>8)
		}
	}

	img, err := pep.Compress(pixels, w, h, reformat.RGBA, reformat.RGBA)
	if err != nil {
		return codecError{err}
	}
	if err := pep.Save(img, *out); err != nil {
		return err
	}
	logger.Printf("wrote %s (%d colors, %d payload bytes)", *out, img.PaletteSize, len(img.Payload))
	return nil
}

// decodePlatformImage tries stdlib PNG first, then golang.org/x/image/tiff,
// covering the "platform image decoders (PNG/TIFF readers)" collaborator
// spec.md names as external to the core.
func decodePlatformImage(f *os.File) (image.Image, error) {
	if img, err := png.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	img, err := tiff.Decode(f)
	if err != nil {
		return nil, usageError{fmt.Errorf("ingest: not a recognized PNG or TIFF: %w", err)}
	}
	return img, nil
}

// --- bench ---

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	in := fs.String("in", "", "input .pep path (omit to bench a synthesized raster)")
	n := fs.Int("n", 100, "decode iterations")
	scale := fs.Int("scale", 4, "synth raster scale factor (only without -in)")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	if *n <= 0 {
		return usageError{fmt.Errorf("bench: -n must be positive")}
	}

	var img pep.Image
	var err error
	if *in == "" {
		img, err = synthBenchImage(*scale)
	} else {
		img, err = pep.Load(*in)
	}
	if err != nil {
		return err
	}

	start := time.Now()
	var pixelCount int
	for i := 0; i < *n; i++ {
		pixels, err := pep.Decompress(img, img.Format, false)
		if err != nil {
			return codecError{err}
		}
		pixelCount = len(pixels)
	}
	elapsed := time.Since(start)

	logger.Printf("%d decodes of %dx%d (%d pixels) in %s (%s/decode, %.1f Mpixels/s)",
		*n, img.Width, img.Height, pixelCount, elapsed, elapsed / time.Duration(*n),
		float64(*n*pixelCount)/elapsed.Seconds()/1e6)
	return nil
}

// synthBenchImage builds a multi-palette test raster for "peppack bench"
// when no input file is given: the demo gradient, nearest-neighbor scaled
// up by factor, which multiplies the pixel count without introducing new
// colors beyond the gradient's own palette (exercising the decode loop at
// a size the small demo raster wouldn't).
func synthBenchImage(factor int) (pep.Image, error) {
	if factor < 1 {
		factor = 1
	}
	const baseW, baseH = 32, 32
	base := image.NewRGBA(image.Rect(0, 0, baseW, baseH))
	gradient := gradientRaster(baseW, baseH)
	for y := 0; y < baseH; y++ {
		for x := 0; x < baseW; x++ {
			c := gradient[y*baseW+x]
			base.Set(x, y, color.NRGBA{R: byte(c >> 24), G: byte(c >> 16), B: byte(c >> 8), A: byte(c)})
		}
	}

	w, h := baseW*factor, baseH*factor
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Over, nil)

	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := dst.At(x, y).RGBA()
			pixels[y*w+x] = uint32(r>>8)<<24 | uint32(g>>8)<<16 | uint32(b>>8)<<8 | uint32(a>>8)
		}
	}
	return pep.Compress(pixels, w, h, reformat.RGBA, reformat.RGBA)
}

// --- export ---

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	in := fs.String("in", "", "input .pep path")
	out := fs.String("out", "", "output .bmp path")
	rle8 := fs.Bool("rle8", false, "write RLE8-compressed BMP (requires <= 256 colors)")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	if *in == "" || *out == "" {
		return usageError{fmt.Errorf("export: -in and -out are required")}
	}

	img, err := pep.Load(*in)
	if err != nil {
		return err
	}
	pixels, err := pep.Decompress(img, reformat.RGBA, false)
	if err != nil {
		return codecError{err}
	}

	rgbaPalette := make([]uint32, img.PaletteSize)
	for i, c := range img.Palette {
		rgbaPalette[i] = reformat.Reformat(c, img.Format, reformat.RGBA)
	}
	index := make(map[uint32]byte, len(rgbaPalette))
	for i, c := range rgbaPalette {
		index[c] = byte(i)
	}

	pal := make(color.Palette, len(rgbaPalette))
	for i, c := range rgbaPalette {
		pal[i] = color.NRGBA{R: byte(c >> 24), G: byte(c >> 16), B: byte(c >> 8), A: byte(c)}
	}

	paletted := image.NewPaletted(image.Rect(0, 0, img.Width, img.Height), pal)
	for i, c := range pixels {
		paletted.Pix[i] = index[c]
	}

	outFile, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if *rle8 {
		if len(pal) > 256 {
			return codecError{fmt.Errorf("export: palette of %d colors does not fit RLE8", len(pal))}
		}
		if err := writeRLE8BMP(outFile, paletted); err != nil {
			return err
		}
	} else if err := bmp.Encode(outFile, paletted); err != nil {
		return err
	}

	logger.Printf("wrote %s (%dx%d, %d colors, rle8=%v)", *out, img.Width, img.Height, len(pal), *rle8)
	return nil
}
