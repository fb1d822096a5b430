package objparser

import "fmt"

// assemble expands the corner records into flat per-corner attribute
// arrays. A vertex shared by faces with different normals or texture
// coordinates appears once per corner.
func (s *scratch) assemble() (*Result, error) {
	n := len(s.corners)
	res := &Result{
		CornerCount: uint32(n),
		Positions:   make([]float32, 0, 3*n),
		Normals:     make([]float32, 0, 3*n),
		TexCoords:   make([]float32, 0, 2*n),
	}
	for i, cn := range s.corners {
		if err := s.checkCorner(cn); err != nil {
			return nil, &ParseError{
				Line:   s.faceLines[i/3],
				Record: Face,
				Err:    fmt.Errorf("index group %d: %w", i%3+1, err),
			}
		}
		p := s.positions[cn.pos]
		t := s.texCoords[cn.tex]
		nm := s.normals[cn.norm]
		res.Positions = append(res.Positions, p[0], p[1], p[2])
		res.TexCoords = append(res.TexCoords, t[0], t[1])
		res.Normals = append(res.Normals, nm[0], nm[1], nm[2])
	}
	return res, nil
}

func (s *scratch) checkCorner(cn corner) error {
	switch {
	case int(cn.pos) >= len(s.positions):
		return fmt.Errorf("vertex index %d: %w, %d declared", cn.pos+1, ErrIndexOutOfRange, len(s.positions))
	case int(cn.tex) >= len(s.texCoords):
		return fmt.Errorf("texture index %d: %w, %d declared", cn.tex+1, ErrIndexOutOfRange, len(s.texCoords))
	case int(cn.norm) >= len(s.normals):
		return fmt.Errorf("normal index %d: %w, %d declared", cn.norm+1, ErrIndexOutOfRange, len(s.normals))
	}
	return nil
}
