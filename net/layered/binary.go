package layered

import "fmt"

import "github.com/neurlang/layered/codec"
import "github.com/pkg/errors"

// FormatVersion is the only network file version understood by Read
const FormatVersion = 1

// decodeError is a decode failure; it matches ErrMalformed and unwraps to its cause
type decodeError struct {
	msg   string
	cause error
}

func (e *decodeError) Error() string {
	if e.cause != nil {
		return ErrMalformed.Error() + ": " + e.msg + ": " + e.cause.Error()
	}
	return ErrMalformed.Error() + ": " + e.msg
}

func (e *decodeError) Unwrap() error {
	return e.cause
}

func (e *decodeError) Is(target error) bool {
	return target == ErrMalformed
}

func malformed(cause error, format string, args ...interface{}) error {
	return &decodeError{msg: fmt.Sprintf(format, args...), cause: cause}
}

// encodedSize returns the number of bytes the neurons of layer l occupy
func (l *Layer) encodedSize() int {
	size := len(l.neurons) * (8 + 2)
	for i := range l.neurons {
		if l.neurons[i].linkType == All {
			size += 4*2 + 8*len(l.neurons[i].weights)
		}
	}
	return size
}

// Write encodes the network. Nothing is written when the network is invalid.
func (net *Network) Write(w ByteWriter) error {
	for li, l := range net.layers {
		for i := range l.neurons {
			n := &l.neurons[i]
			if n.linkType != None && n.linkType != All {
				return errors.Wrapf(ErrInvalidNetwork, "neuron %d of layer %d has link type %d", i, li, n.linkType)
			}
			if n.linkType != All {
				continue
			}
			if err := net.checkUpstream(li, i); err != nil {
				return errors.Wrapf(ErrInvalidNetwork, "%v", err)
			}
		}
	}

	w.EnsureSpace(4 + 4 + 4*len(net.layers))
	w.WriteUint32(FormatVersion)
	w.WriteUint32(uint32(len(net.layers)))
	for _, l := range net.layers {
		w.WriteUint32(uint32(len(l.neurons)))
	}

	for _, l := range net.layers {
		w.EnsureSpace(l.encodedSize())
		for i := range l.neurons {
			n := &l.neurons[i]
			w.WriteFloat64(n.bias)
			w.WriteUint16(uint16(n.linkType))
			if n.linkType == All {
				w.WriteUint32(uint32(n.upstream + 1))
				w.WriteUint32(uint32(len(n.weights)))
				for _, v := range n.weights {
					w.WriteFloat64(v)
				}
			}
		}
	}
	return nil
}

// remainder is implemented by readers that know how many bytes are left
type remainder interface {
	Remaining() int
}

// Read decodes a network written by Write. Any failure returns an error matching
// ErrMalformed and no network.
func Read(r ByteReader) (*Network, error) {
	version, err := r.ReadUint32()
	if err != nil {
		return nil, malformed(err, "reading version")
	}
	if version != FormatVersion {
		return nil, malformed(nil, "unsupported version %d", version)
	}

	count, err := r.ReadUint32()
	if err != nil {
		return nil, malformed(err, "reading layer count")
	}
	if count < 2 {
		return nil, malformed(nil, "degenerate layer count %d", count)
	}
	if rem, ok := r.(remainder); ok && uint64(count)*4 > uint64(rem.Remaining()) {
		return nil, malformed(nil, "layer count %d exceeds data size", count)
	}

	sizes := make([]int, count)
	var total uint64
	for i := range sizes {
		size, err := r.ReadUint32()
		if err != nil {
			return nil, malformed(err, "reading size of layer %d", i)
		}
		sizes[i] = int(size)
		total += uint64(size)
	}
	if rem, ok := r.(remainder); ok && total*(8+2) > uint64(rem.Remaining()) {
		return nil, malformed(nil, "%d neurons exceed data size", total)
	}

	net := new(Network)
	for range sizes {
		net.CreateLayer()
	}

	for li, l := range net.layers {
		l.neurons = make([]Neuron, sizes[li])
		for i := range l.neurons {
			n := &l.neurons[i]
			*n = newNeuron()

			if n.bias, err = r.ReadFloat64(); err != nil {
				return nil, malformed(err, "reading bias of neuron %d in layer %d", i, li)
			}
			link, err := r.ReadUint16()
			if err != nil {
				return nil, malformed(err, "reading link type of neuron %d in layer %d", i, li)
			}
			switch LinkType(link) {
			case None:
				continue
			case All:
			default:
				return nil, malformed(nil, "link type %d of neuron %d in layer %d", link, i, li)
			}

			up, err := r.ReadUint32()
			if err != nil {
				return nil, malformed(err, "reading input layer of neuron %d in layer %d", i, li)
			}
			upstream := int(up) - 1
			if upstream < 0 || upstream >= len(sizes) {
				return nil, malformed(nil, "neuron %d in layer %d links to layer %d", i, li, upstream)
			}
			weights, err := r.ReadUint32()
			if err != nil {
				return nil, malformed(err, "reading weight count of neuron %d in layer %d", i, li)
			}
			if int(weights) != sizes[upstream] {
				return nil, malformed(nil, "neuron %d in layer %d has %d weights, layer %d has %d neurons",
					i, li, weights, upstream, sizes[upstream])
			}

			n.link(upstream, int(weights))
			for j := range n.weights {
				if n.weights[j], err = r.ReadFloat64(); err != nil {
					return nil, malformed(err, "reading weight %d of neuron %d in layer %d", j, i, li)
				}
			}
		}
		if len(l.neurons) > 0 {
			l.linkType = l.neurons[0].linkType
		}
	}
	return net, nil
}

// MarshalBinary encodes the network in little endian byte order
func (net *Network) MarshalBinary() ([]byte, error) {
	w := codec.NewWriter(codec.LittleEndian)
	if err := net.Write(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalBinary replaces the network by the one encoded in data
func (net *Network) UnmarshalBinary(data []byte) error {
	decoded, err := Read(codec.NewReader(data, codec.LittleEndian))
	if err != nil {
		return err
	}
	*net = *decoded
	for _, l := range net.layers {
		l.net = net
	}
	return nil
}
