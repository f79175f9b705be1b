// Package loaders builds a scenegraph.Scene from on-disk assets: a YAML
// scene file (camera, settings, background, materials, objects), a
// Wavefront-style mesh file, and a sky-map image.
package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/pathtrace/internal/log"
	"github.com/df07/pathtrace/pkg/background"
	"github.com/df07/pathtrace/pkg/material"
	"github.com/df07/pathtrace/pkg/primitive"
	"github.com/df07/pathtrace/pkg/scenegraph"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// vec3Doc decodes a YAML [x, y, z] sequence into a Vec3.
type vec3Doc [3]float64

func (v vec3Doc) vec3() vecmath.Vec3 {
	return vecmath.NewVec3(v[0], v[1], v[2])
}

type cameraDoc struct {
	LookFrom    vec3Doc `yaml:"look_from"`
	LookAt      vec3Doc `yaml:"look_at"`
	Up          vec3Doc `yaml:"up"`
	VFov        float64 `yaml:"vfov"`
	AspectRatio float64 `yaml:"aspect_ratio"`
}

type settingsDoc struct {
	SamplesPerPixel      uint32  `yaml:"samples_per_pixel"`
	MaxRayDepth          uint8   `yaml:"max_ray_depth"`
	EnableMultithreading bool    `yaml:"enable_multithreading"`
	EnableBVHTree        bool    `yaml:"enable_bvh_tree"`
	Mode                 string  `yaml:"mode"`
	ClampIndirect        float64 `yaml:"clamp_indirect"`
	Seed                 *uint64 `yaml:"seed"`
}

var renderModesByName = map[string]scenegraph.RenderMode{
	"Full":   scenegraph.ModeFull,
	"Clay":   scenegraph.ModeClay,
	"Normal": scenegraph.ModeNormal,
	"Random": scenegraph.ModeRandom,
}

// taggedDoc is the envelope every material/object/background entry decodes
// into first: a "type" discriminator plus the raw node, so the concrete
// fields can be decoded a second time once the type is known.
type taggedDoc struct {
	Type string    `yaml:"type"`
	Node yaml.Node `yaml:"-"`
}

func (t *taggedDoc) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}
	t.Type = head.Type
	t.Node = *node
	return nil
}

type sceneDoc struct {
	Camera     cameraDoc   `yaml:"camera"`
	Settings   settingsDoc `yaml:"settings"`
	Background taggedDoc   `yaml:"background"`
	Objects    []taggedDoc `yaml:"objects"`
	Materials  []taggedDoc `yaml:"materials"`
}

// LoadScene decodes a YAML scene file and builds a ready-to-render
// scenegraph.Scene (materials and objects registered, BVH not yet built —
// call scene.Build() once asset loading, e.g. meshes, is also done).
func LoadScene(path string) (*scenegraph.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: read scene file %s: %w", path, err)
	}

	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loaders: parse scene file %s: %w", path, err)
	}

	mode, ok := renderModesByName[doc.Settings.Mode]
	if !ok {
		log.Sugar().Warnw("unrecognized render mode, defaulting to Full", "mode", doc.Settings.Mode, "file", path)
		mode = scenegraph.ModeFull
	}

	settings := scenegraph.RenderSettings{
		SamplesPerPixel:      doc.Settings.SamplesPerPixel,
		MaxRayDepth:          doc.Settings.MaxRayDepth,
		EnableMultithreading: doc.Settings.EnableMultithreading,
		EnableBVHTree:        doc.Settings.EnableBVHTree,
		Mode:                 mode,
		ClampIndirect:        doc.Settings.ClampIndirect,
		Seed:                 doc.Settings.Seed,
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("loaders: invalid render settings in %s: %w", path, err)
	}

	camera := primitive.NewCamera(primitive.CameraConfig{
		LookFrom:    doc.Camera.LookFrom.vec3(),
		LookAt:      doc.Camera.LookAt.vec3(),
		Up:          doc.Camera.Up.vec3(),
		VFov:        doc.Camera.VFov,
		AspectRatio: doc.Camera.AspectRatio,
	})

	bg, err := decodeBackground(doc.Background)
	if err != nil {
		return nil, fmt.Errorf("loaders: decoding background in %s: %w", path, err)
	}

	scene := scenegraph.NewScene(camera, settings, bg)

	materials := make([]material.Material, 0, len(doc.Materials))
	handles := make([]material.Handle, 0, len(doc.Materials))
	for i, m := range doc.Materials {
		mat, err := decodeMaterial(m, materials)
		if err != nil {
			return nil, fmt.Errorf("loaders: decoding material %d in %s: %w", i, path, err)
		}
		materials = append(materials, mat)
		handles = append(handles, scene.AddMaterial(mat))
	}

	objects := make([]primitive.Primitive, 0, len(doc.Objects))
	for i, o := range doc.Objects {
		obj, err := decodeObject(o, handles, objects)
		if err != nil {
			return nil, fmt.Errorf("loaders: decoding object %d in %s: %w", i, path, err)
		}
		objects = append(objects, obj)
		scene.AddObject(obj)
	}

	return scene, nil
}

// loadSkyMap dispatches a SkyMap entry's path by extension: the raw
// (width, height)-plus-float-RGBA wire format (§6) for ".bin", and an
// ordinary PNG/JPEG/TIFF equirectangular image (decoded via
// background.LoadSkyMap) for anything else.
func loadSkyMap(path string) (background.Background, error) {
	if strings.EqualFold(filepath.Ext(path), ".bin") {
		return LoadSkyImage(path)
	}
	return background.LoadSkyMap(path)
}

func decodeBackground(doc taggedDoc) (background.Background, error) {
	switch doc.Type {
	case "UniformBackground":
		var fields struct {
			Color vec3Doc `yaml:"color"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		return background.NewUniform(fields.Color.vec3()), nil
	case "GradientBackground":
		var fields struct {
			Top    vec3Doc `yaml:"top"`
			Bottom vec3Doc `yaml:"bottom"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		return background.NewGradient(fields.Top.vec3(), fields.Bottom.vec3()), nil
	case "SkyMap":
		var fields struct {
			Path string `yaml:"path"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		return loadSkyMap(fields.Path)
	default:
		return nil, fmt.Errorf("loaders: unrecognized background type %q", doc.Type)
	}
}

func decodeMaterial(doc taggedDoc, registered []material.Material) (material.Material, error) {
	switch doc.Type {
	case "Lambertian":
		var fields struct {
			Albedo vec3Doc `yaml:"albedo"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		return material.NewLambertian(fields.Albedo.vec3()), nil
	case "Metal":
		var fields struct {
			Albedo vec3Doc `yaml:"albedo"`
			Fuzz   float64 `yaml:"fuzz"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		return material.NewMetal(fields.Albedo.vec3(), fields.Fuzz), nil
	case "Dielectric":
		var fields struct {
			IR float64 `yaml:"ir"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		return material.NewDielectric(fields.IR), nil
	case "Emission":
		var fields struct {
			Color    vec3Doc `yaml:"color"`
			Strength float64 `yaml:"strength"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		return material.NewEmission(fields.Color.vec3(), fields.Strength), nil
	case "MixMaterial":
		var fields struct {
			First  int     `yaml:"first"`
			Second int     `yaml:"second"`
			Factor float64 `yaml:"factor"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		first, second, err := resolveMixOperands(fields.First, fields.Second, registered)
		if err != nil {
			return nil, err
		}
		return material.NewMix(first, second, fields.Factor), nil
	case "Isotropic":
		var fields struct {
			Color vec3Doc `yaml:"color"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		return material.NewIsotropic(fields.Color.vec3()), nil
	default:
		return nil, fmt.Errorf("loaders: unrecognized material type %q", doc.Type)
	}
}

// resolveMixOperands looks up the already-decoded material.Material values
// behind MixMaterial's forward-declared indices. Mix holds its branches
// directly (pkg/material/mix.go) rather than by Handle, so this flattens
// the scene file's integer indices into the concrete materials built so
// far; a MixMaterial may only reference materials declared earlier in the
// list.
func resolveMixOperands(first, second int, registered []material.Material) (material.Material, material.Material, error) {
	if first < 0 || first >= len(registered) || second < 0 || second >= len(registered) {
		return nil, nil, fmt.Errorf("loaders: MixMaterial operand out of range (first=%d second=%d, %d materials declared so far)", first, second, len(registered))
	}
	return registered[first], registered[second], nil
}

func decodeObject(doc taggedDoc, materials []material.Handle, registeredObjects []primitive.Primitive) (primitive.Primitive, error) {
	switch doc.Type {
	case "Sphere":
		var fields struct {
			Center   vec3Doc `yaml:"center"`
			Radius   float64 `yaml:"radius"`
			Material int     `yaml:"material"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		handle, err := resolveMaterialHandle(fields.Material, materials)
		if err != nil {
			return nil, err
		}
		return primitive.NewSphere(fields.Center.vec3(), fields.Radius, handle), nil
	case "Volume":
		var fields struct {
			Boundary      int     `yaml:"boundary"`
			NegInvDensity float64 `yaml:"neg_inv_density"`
			Material      int     `yaml:"material"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		if fields.Boundary < 0 || fields.Boundary >= len(registeredObjects) {
			return nil, fmt.Errorf("loaders: Volume boundary index %d out of range (%d objects declared so far)", fields.Boundary, len(registeredObjects))
		}
		handle, err := resolveMaterialHandle(fields.Material, materials)
		if err != nil {
			return nil, err
		}
		boundary := registeredObjects[fields.Boundary]
		if fields.NegInvDensity >= 0 {
			return nil, fmt.Errorf("loaders: Volume neg_inv_density must be negative (density = -1/neg_inv_density must be positive), got %v", fields.NegInvDensity)
		}
		density := -1.0 / fields.NegInvDensity
		return primitive.NewVolume(boundary, density, handle), nil
	case "Mesh":
		var fields struct {
			Path     string `yaml:"path"`
			Material int    `yaml:"material"`
		}
		if err := doc.Node.Decode(&fields); err != nil {
			return nil, err
		}
		handle, err := resolveMaterialHandle(fields.Material, materials)
		if err != nil {
			return nil, err
		}
		return LoadMesh(fields.Path, handle)
	default:
		return nil, fmt.Errorf("loaders: unrecognized object type %q", doc.Type)
	}
}

func resolveMaterialHandle(index int, materials []material.Handle) (material.Handle, error) {
	if index < 0 || index >= len(materials) {
		return 0, fmt.Errorf("loaders: material index %d out of range (%d materials declared)", index, len(materials))
	}
	return materials[index], nil
}
