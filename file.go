package pep

import "os"

// Save serializes img and writes it to path, matching spec.md §5's
// save(PepImage, path) -> bool. It returns any Serialize or I/O error
// rather than collapsing both into a bare boolean, since a Go caller can
// inspect the error directly.
func Save(img Image, path string) error {
	data, err := Serialize(img)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads path and deserializes it into an Image.
func Load(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, err
	}
	return Deserialize(data)
}
