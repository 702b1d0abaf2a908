// Package mnist reads the MNIST handwritten digit set stored as IDX files
package mnist

import "bytes"
import "crypto/sha256"
import "fmt"
import "os"
import "path/filepath"

import "github.com/neurlang/layered/datasets"
import "github.com/pkg/errors"

// ImgSize is the side of an MNIST digit image
const ImgSize = 28

// Classes is the number of digit classes
const Classes = 10

// file names searched for each part, raw first
var (
	trainSetImg = []string{"train-images.idx3-ubyte", "train-images-idx3-ubyte", "train-images-idx3-ubyte.gz"}
	trainSetVal = []string{"train-labels.idx1-ubyte", "train-labels-idx1-ubyte", "train-labels-idx1-ubyte.gz"}
	inferSetImg = []string{"test-images.idx3-ubyte", "t10k-images.idx3-ubyte", "t10k-images-idx3-ubyte", "t10k-images-idx3-ubyte.gz"}
	inferSetVal = []string{"test-labels.idx1-ubyte", "t10k-labels.idx1-ubyte", "t10k-labels-idx1-ubyte", "t10k-labels-idx1-ubyte.gz"}
)

// sha256 digests of the canonical gzipped distribution
var digests = map[string]string{
	"t10k-images-idx3-ubyte.gz":  "8d422c7b0a1c1c79245a5bcf07fe86e33eeafee792b84584aec276f5a2dbc4e6",
	"t10k-labels-idx1-ubyte.gz":  "f7ae60f92e00ec6debd23a6088c31dbd2371eca3ffa0defaefb259924204aec6",
	"train-images-idx3-ubyte.gz": "440fcabf73cc546fa21475e81ea370265605f56be210a4024d2ca8f203523609",
	"train-labels-idx1-ubyte.gz": "3552534a0a558bbed6aed32b30c495cca23d567ec52cac8be1a0730e8010255c",
}

// find returns the path of the first existing candidate in dir
func find(dir string, candidates []string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, "checking if file '%s' exists", path)
		}
	}
	return "", errors.Errorf("none of %v exists in '%s'", candidates, dir)
}

// open reads a file and checks its digest when the name is a known one
func open(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open file '%s'", path)
	}
	if digest, ok := digests[filepath.Base(path)]; ok {
		if fmt.Sprintf("%x", sha256.Sum256(data)) != digest {
			return nil, errors.Errorf("file hash for file '%s' is incorrect", path)
		}
	}
	return data, nil
}

// LoadImages loads the first existing image file among candidates in dir
func LoadImages(dir string, candidates []string) (*Images, error) {
	path, err := find(dir, candidates)
	if err != nil {
		return nil, err
	}
	data, err := open(path)
	if err != nil {
		return nil, err
	}
	im, err := ReadImages(bytes.NewReader(data))
	return im, errors.Wrapf(err, "file '%s'", path)
}

// LoadLabels loads the first existing label file among candidates in dir
func LoadLabels(dir string, candidates []string) (Labels, error) {
	path, err := find(dir, candidates)
	if err != nil {
		return nil, err
	}
	data, err := open(path)
	if err != nil {
		return nil, err
	}
	l, err := ReadLabels(bytes.NewReader(data))
	return l, errors.Wrapf(err, "file '%s'", path)
}

// Samples pairs images with labels, normalizing pixels to [0, 1]
func Samples(im *Images, labels Labels) (datasets.Samples, error) {
	if im.Len() != len(labels) {
		return nil, errors.Errorf("image count %d does not equal label count %d", im.Len(), len(labels))
	}
	o := make(datasets.Samples, im.Len())
	for i := range o {
		o[i] = datasets.Sample{
			Input: datasets.Normalize(im.Image(i)),
			Label: labels[i],
		}
	}
	return o, nil
}

// Load loads the train and test sets from dir
func Load(dir string) (train, test datasets.Samples, err error) {
	trainImages, err := LoadImages(dir, trainSetImg)
	if err != nil {
		return nil, nil, err
	}
	trainLabels, err := LoadLabels(dir, trainSetVal)
	if err != nil {
		return nil, nil, err
	}
	testImages, err := LoadImages(dir, inferSetImg)
	if err != nil {
		return nil, nil, err
	}
	testLabels, err := LoadLabels(dir, inferSetVal)
	if err != nil {
		return nil, nil, err
	}
	if trainImages.Width() != testImages.Width() || trainImages.Height() != testImages.Height() {
		return nil, nil, errors.Errorf("training %dx%d / test %dx%d image size mismatch",
			trainImages.Width(), trainImages.Height(), testImages.Width(), testImages.Height())
	}
	if train, err = Samples(trainImages, trainLabels); err != nil {
		return nil, nil, errors.Wrap(err, "training set")
	}
	if test, err = Samples(testImages, testLabels); err != nil {
		return nil, nil, errors.Wrap(err, "test set")
	}
	return train, test, nil
}

// LoadTest loads only the test set from dir
func LoadTest(dir string) (datasets.Samples, error) {
	images, err := LoadImages(dir, inferSetImg)
	if err != nil {
		return nil, err
	}
	labels, err := LoadLabels(dir, inferSetVal)
	if err != nil {
		return nil, err
	}
	return Samples(images, labels)
}
