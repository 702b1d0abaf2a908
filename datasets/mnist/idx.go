package mnist

import "bufio"
import "compress/gzip"
import "io"

import "github.com/neurlang/layered/codec"
import "github.com/pkg/errors"

// IDX magic numbers
const (
	ImagesMagic = 2051
	LabelsMagic = 2049
)

// ErrFormat is returned for IDX data with a wrong magic number or size
var ErrFormat = errors.New("mnist: bad idx data")

// Images is an IDX3 image set of equally sized 8 bit grayscale images
type Images struct {
	width, height int
	data          []byte
}

// Len returns the number of images
func (im *Images) Len() int {
	if im.width*im.height == 0 {
		return 0
	}
	return len(im.data) / (im.width * im.height)
}

// Width returns the image width
func (im *Images) Width() int {
	return im.width
}

// Height returns the image height
func (im *Images) Height() int {
	return im.height
}

// Image returns the pixels of the i-th image, row major
func (im *Images) Image(i int) []byte {
	sz := im.width * im.height
	return im.data[i*sz : (i+1)*sz]
}

// AddImage appends an image of the set dimensions
func (im *Images) AddImage(pixels []byte) error {
	if len(pixels) != im.width*im.height {
		return errors.Wrapf(ErrFormat, "image of %d pixels added to %dx%d set", len(pixels), im.width, im.height)
	}
	im.data = append(im.data, pixels...)
	return nil
}

// NewImages creates an empty image set
func NewImages(width, height int) *Images {
	return &Images{width: width, height: height}
}

// Labels is an IDX1 label set
type Labels []byte

// readAll returns the whole stream, gunzipping it when it starts with the gzip magic
func readAll(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "mnist: gzip header")
		}
		defer gz.Close()
		data, err := io.ReadAll(gz)
		return data, errors.Wrap(err, "mnist: gunzip")
	}
	data, err := io.ReadAll(br)
	return data, errors.Wrap(err, "mnist: read")
}

// ReadImages reads an IDX3 image set, optionally gzipped
func ReadImages(r io.Reader) (*Images, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return ParseImages(data)
}

// ParseImages parses an uncompressed IDX3 image set
func ParseImages(data []byte) (*Images, error) {
	rd := codec.NewReader(data, codec.BigEndian)
	var hdr [4]uint32
	var err error
	for i := range hdr {
		if hdr[i], err = rd.ReadUint32(); err != nil {
			return nil, errors.Wrapf(ErrFormat, "idx3 header: %v", err)
		}
	}
	if hdr[0] != ImagesMagic {
		return nil, errors.Wrapf(ErrFormat, "idx3 magic number %d", hdr[0])
	}
	count, height, width := uint64(hdr[1]), uint64(hdr[2]), uint64(hdr[3])
	// height*width fits in 64 bits, the product with count may not
	if area := height * width; area > 0 && count > uint64(rd.Remaining())/area {
		return nil, errors.Wrapf(ErrFormat, "idx3 holds %d bytes, header needs %d images of %dx%d",
			rd.Remaining(), count, width, height)
	}
	pixels, _ := rd.Read(int(count * height * width))
	return &Images{
		width:  int(width),
		height: int(height),
		data:   append([]byte(nil), pixels...),
	}, nil
}

// Write writes the image set in IDX3 format
func (im *Images) Write(w io.Writer) error {
	cw := codec.NewWriter(codec.BigEndian)
	cw.EnsureSpace(4*4 + len(im.data))
	cw.WriteUint32(ImagesMagic)
	cw.WriteUint32(uint32(im.Len()))
	cw.WriteUint32(uint32(im.height))
	cw.WriteUint32(uint32(im.width))
	cw.Write(im.data)
	_, err := w.Write(cw.Bytes())
	return err
}

// ReadLabels reads an IDX1 label set, optionally gzipped
func ReadLabels(r io.Reader) (Labels, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return ParseLabels(data)
}

// ParseLabels parses an uncompressed IDX1 label set
func ParseLabels(data []byte) (Labels, error) {
	rd := codec.NewReader(data, codec.BigEndian)
	magic, err := rd.ReadUint32()
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "idx1 header: %v", err)
	}
	if magic != LabelsMagic {
		return nil, errors.Wrapf(ErrFormat, "idx1 magic number %d", magic)
	}
	count, err := rd.ReadUint32()
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "idx1 header: %v", err)
	}
	labels, err := rd.Read(int(count))
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "idx1 labels: %v", err)
	}
	return append(Labels(nil), labels...), nil
}

// Write writes the label set in IDX1 format
func (l Labels) Write(w io.Writer) error {
	cw := codec.NewWriter(codec.BigEndian)
	cw.EnsureSpace(2*4 + len(l))
	cw.WriteUint32(LabelsMagic)
	cw.WriteUint32(uint32(len(l)))
	cw.Write(l)
	_, err := w.Write(cw.Bytes())
	return err
}
