package layered

import "bytes"
import "compress/lzw"
import "io"
import "os"

import "github.com/pkg/errors"

// WriteToFile writes the encoded network to a file
func (net *Network) WriteToFile(name string) error {
	data, err := net.MarshalBinary()
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(name, data, 0666), "writing network file %s", name)
}

// ReadFromFile reads a network from a file written by WriteToFile
func ReadFromFile(name string) (*Network, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading network file %s", name)
	}
	net := new(Network)
	if err := net.UnmarshalBinary(data); err != nil {
		return nil, errors.Wrapf(err, "decoding network file %s", name)
	}
	return net, nil
}

// WriteCompressed writes the encoded network to a lzw stream
func (net *Network) WriteCompressed(w io.Writer) error {
	data, err := net.MarshalBinary()
	if err != nil {
		return err
	}
	lw := lzw.NewWriter(w, lzw.LSB, 8)
	if _, err := lw.Write(data); err != nil {
		lw.Close()
		return err
	}
	return lw.Close()
}

// ReadCompressed reads a network from a lzw stream written by WriteCompressed
func ReadCompressed(r io.Reader) (*Network, error) {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(lr); err != nil {
		return nil, errors.Wrap(err, "decompressing network")
	}
	net := new(Network)
	if err := net.UnmarshalBinary(buf.Bytes()); err != nil {
		return nil, err
	}
	return net, nil
}

// WriteCompressedToFile writes the network to a lzw file
func (net *Network) WriteCompressedToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = net.WriteCompressed(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadCompressedFromFile reads a network from a lzw file
func ReadCompressedFromFile(name string) (*Network, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCompressed(file)
}
