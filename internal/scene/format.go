package scene

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-shapecast/internal/collide"
	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

// File is the on-disk shape of a scene.
type File struct {
	ID        string         `yaml:"id" json:"id" jsonschema:"title=Scene id,pattern=^[a-z0-9-]+$,minLength=1,required"`
	Name      string         `yaml:"name" json:"name,omitempty" jsonschema:"description=Human readable title"`
	Colliders []ColliderSpec `yaml:"colliders" json:"colliders" jsonschema:"description=Static obstacles in world units"`
}

// ColliderSpec is one obstacle entry. Min and Max may be given in any order;
// they are treated as opposite corners.
type ColliderSpec struct {
	Kind   string     `yaml:"kind" json:"kind" jsonschema:"enum=box,enum=slope,required"`
	Min    [2]float64 `yaml:"min" json:"min" jsonschema:"description=First corner as [x y],required"`
	Max    [2]float64 `yaml:"max" json:"max" jsonschema:"description=Opposite corner as [x y],required"`
	Facing string     `yaml:"facing,omitempty" json:"facing,omitempty" jsonschema:"enum=lu,enum=ru,enum=rd,enum=ld,description=Empty corner side for slopes"`
}

// Parse decodes a YAML scene.
func Parse(data []byte) (Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Scene{}, fmt.Errorf("scene: yaml unmarshal: %w", err)
	}
	return f.Scene()
}

// Scene converts the file form into colliders.
func (f File) Scene() (Scene, error) {
	if strings.TrimSpace(f.ID) == "" {
		return Scene{}, fmt.Errorf("scene: missing id")
	}

	s := Scene{ID: f.ID, Name: f.Name}
	if s.Name == "" {
		s.Name = f.ID
	}

	for i, spec := range f.Colliders {
		c, err := spec.Collider()
		if err != nil {
			return Scene{}, fmt.Errorf("scene %s: collider %d: %w", f.ID, i, err)
		}
		s.Colliders = append(s.Colliders, c)
	}
	return s, nil
}

// Collider builds the collider described by the spec.
func (c ColliderSpec) Collider() (collide.Collider, error) {
	b := geom.BoxFromCorners(geom.V(c.Min[0], c.Min[1]), geom.V(c.Max[0], c.Max[1]))

	switch strings.ToLower(strings.TrimSpace(c.Kind)) {
	case "box":
		return collide.NewBoxCollider(b), nil
	case "slope":
		if c.Facing == "" {
			return nil, fmt.Errorf("slope needs a facing")
		}
		o, err := collide.ParseOrientation(c.Facing)
		if err != nil {
			return nil, err
		}
		return collide.NewSlopeCollider(b, o), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", c.Kind)
	}
}

// FileFrom converts a scene back to its file form.
func FileFrom(s Scene) File {
	f := File{ID: s.ID, Name: s.Name}
	for _, c := range s.Colliders {
		b := c.BoundingBox()
		spec := ColliderSpec{
			Kind: c.Kind(),
			Min:  [2]float64{b.Min.X(), b.Min.Y()},
			Max:  [2]float64{b.Max.X(), b.Max.Y()},
		}
		if sc, ok := c.(collide.SlopeCollider); ok {
			spec.Facing = sc.Slope.Facing.String()
		}
		f.Colliders = append(f.Colliders, spec)
	}
	return f
}

// Encode renders a scene as YAML that Parse accepts.
func Encode(s Scene) ([]byte, error) {
	data, err := yaml.Marshal(FileFrom(s))
	if err != nil {
		return nil, fmt.Errorf("scene: yaml marshal: %w", err)
	}
	return data, nil
}

// Extensions returns supported scene file extensions.
func Extensions() []string {
	return []string{".yaml", ".yml"}
}
