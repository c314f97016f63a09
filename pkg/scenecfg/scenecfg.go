// Package scenecfg loads a scene description from YAML using
// gopkg.in/yaml.v3, converting plain data into the camera, material, and
// geometry constructors the rest of the module exposes.
package scenecfg

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arborfall/pathtracer/pkg/camera"
	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/hittable"
	"github.com/arborfall/pathtracer/pkg/material"
)

// vec3Config is the (x, y, z) triple every scalar color/point/vector field
// is written as in YAML.
type vec3Config struct {
	X, Y, Z float64
}

func (v vec3Config) toVec3() core.Vec3 { return core.NewVec3(v.X, v.Y, v.Z) }

// cameraConfig mirrors camera.Config with plain fields so it round-trips
// through YAML without custom marshaling.
type cameraConfig struct {
	LookFrom        vec3Config `yaml:"lookFrom"`
	LookAt          vec3Config `yaml:"lookAt"`
	Up              vec3Config `yaml:"up"`
	Width           int        `yaml:"width"`
	AspectRatio     float64    `yaml:"aspectRatio"`
	VFov            float64    `yaml:"vfov"`
	DefocusAngle    float64    `yaml:"defocusAngle"`
	FocusDistance   float64    `yaml:"focusDistance"`
	SamplesPerPixel int        `yaml:"samplesPerPixel"`
	MaxDepth        int        `yaml:"maxDepth"`
	ShutterOpen     float64    `yaml:"shutterOpen"`
	ShutterClose    float64    `yaml:"shutterClose"`
	Background      vec3Config `yaml:"background"`
}

func (c cameraConfig) toConfig() camera.Config {
	return camera.Config{
		LookFrom:        c.LookFrom.toVec3(),
		LookAt:          c.LookAt.toVec3(),
		Up:              c.Up.toVec3(),
		Width:           c.Width,
		AspectRatio:     c.AspectRatio,
		VFov:            c.VFov,
		DefocusAngle:    c.DefocusAngle,
		FocusDistance:   c.FocusDistance,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		ShutterOpen:     c.ShutterOpen,
		ShutterClose:    c.ShutterClose,
		Background:      c.Background.toVec3(),
	}
}

// materialConfig names one of the built-in material kinds plus its
// parameters; unsupported kinds are a load-time error rather than a silent
// default, mirroring the pack's "unsupported X" yaml validation pattern.
type materialConfig struct {
	Kind            string     `yaml:"kind"`
	Color           vec3Config `yaml:"color"`
	Fuzz            float64    `yaml:"fuzz"`
	RefractiveIndex float64    `yaml:"refractiveIndex"`
}

func (m materialConfig) build() (material.Material, error) {
	switch m.Kind {
	case "rough", "lambertian":
		return material.NewRoughColor(m.Color.toVec3()), nil
	case "metal":
		return material.NewMetal(m.Color.toVec3(), m.Fuzz), nil
	case "dielectric", "glass":
		return material.NewDielectric(m.RefractiveIndex), nil
	case "isotropic":
		return material.NewIsotropicColor(m.Color.toVec3()), nil
	case "light", "diffuseLight":
		return material.NewDiffuseLightColor(m.Color.toVec3()), nil
	default:
		return nil, fmt.Errorf("scenecfg: unsupported material kind %q", m.Kind)
	}
}

// objectConfig names one of the built-in primitive kinds plus its
// parameters.
type objectConfig struct {
	Kind     string         `yaml:"kind"`
	Center   vec3Config     `yaml:"center"`
	Radius   float64        `yaml:"radius"`
	Q        vec3Config     `yaml:"q"`
	U        vec3Config     `yaml:"u"`
	V        vec3Config     `yaml:"v"`
	Material materialConfig `yaml:"material"`
}

func (o objectConfig) build() (hittable.Hittable, error) {
	mat, err := o.Material.build()
	if err != nil {
		return nil, err
	}

	switch o.Kind {
	case "sphere":
		return hittable.NewSphere(o.Center.toVec3(), o.Radius, mat), nil
	case "quad", "parallelogram":
		return hittable.NewParallelogram(o.Q.toVec3(), o.U.toVec3(), o.V.toVec3(), mat)
	default:
		return nil, fmt.Errorf("scenecfg: unsupported object kind %q", o.Kind)
	}
}

// Document is the top-level YAML shape: a camera block and a list of scene
// objects.
type Document struct {
	Camera  cameraConfig   `yaml:"camera"`
	Objects []objectConfig `yaml:"objects"`
}

// Scene is the result of loading a Document: a ready camera and the
// hittables it should render against.
type Scene struct {
	Camera  *camera.Camera
	Objects []hittable.Hittable
}

// Load parses YAML scene data and constructs every camera and object it
// describes.
func Load(data []byte) (*Scene, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenecfg: yaml: %w", err)
	}

	objects := make([]hittable.Hittable, 0, len(doc.Objects))
	for i, oc := range doc.Objects {
		obj, err := oc.build()
		if err != nil {
			return nil, fmt.Errorf("scenecfg: object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}

	cam, err := camera.NewCamera(doc.Camera.toConfig())
	if err != nil {
		return nil, fmt.Errorf("scenecfg: camera: %w", err)
	}

	return &Scene{
		Camera:  cam,
		Objects: objects,
	}, nil
}
