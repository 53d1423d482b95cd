package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobox3d/pkg/geometry"
)

const (
	// binaryHeaderSize is the fixed header length of a binary STL file
	binaryHeaderSize = 80
	// facetSize is the on-disk size of one binary triangle record
	facetSize = 50
)

// Parse reads an STL file and returns a Model
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return model, nil
}

// Decode reads an ASCII or binary STL stream
func Decode(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL data: %w", err)
	}
	if isBinary(data) {
		return decodeBinary(bytes.NewReader(data))
	}
	return decodeASCII(bytes.NewReader(data))
}

// isBinary reports whether data is a binary STL. Some exporters start the
// binary header with "solid", so those are only taken as ASCII when the
// size does not match the triangle count in the header.
func isBinary(data []byte) bool {
	if !bytes.HasPrefix(data, []byte("solid")) {
		return true
	}
	if len(data) < binaryHeaderSize+4 {
		return false
	}
	count := uint64(binary.LittleEndian.Uint32(data[binaryHeaderSize:]))
	return uint64(len(data)) == binaryHeaderSize+4+count*facetSize
}

func decodeASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var normal mgl64.Vec3
	var vertices []mgl64.Vec3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				v, err := parseVec3(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("invalid facet normal: %w", err)
				}
				normal = v
			}

		case "vertex":
			if len(fields) >= 4 {
				v, err := parseVec3(fields[1:4])
				if err != nil {
					return nil, fmt.Errorf("invalid vertex: %w", err)
				}
				vertices = append(vertices, v)
			}

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVec3(fields []string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	for i, f := range fields {
		c, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return v, err
		}
		v[i] = c
	}
	return v, nil
}

// facet is the on-disk layout of one binary STL triangle
type facet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

func decodeBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = string(bytes.TrimRight(header, "\x00"))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var f facet
		if err := binary.Read(reader, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(vec3(f.Normal), vec3(f.V1), vec3(f.V2), vec3(f.V3)))
	}

	return model, nil
}

func vec3(v [3]float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
