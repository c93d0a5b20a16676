package reader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/meshkit/asset"
	"github.com/achilleasa/meshkit/asset/model"
	"github.com/achilleasa/meshkit/config"
	"github.com/achilleasa/meshkit/log"
	"github.com/achilleasa/meshkit/types"
	"github.com/chewxy/math32"
)

// Name of the segment key used before the first group directive.
const defaultKey = "default"

// The attribute store holds the coordinates defined by an object file. Face
// corners address it with zero-based indices that are global to the file.
type attributeStore struct {
	positions []types.Vec3
	texCoords []types.Vec2
	normals   []types.Vec3
}

type wavefrontReader struct {
	logger log.Logger
	opts   config.Options
	mode   faceMode

	// The imported model.
	model *model.Model

	// Coordinates shared by all segments.
	attrs attributeStore

	// Loaded material libraries in mtllib order.
	libraries []*materialLibrary

	// Currently selected material; nil until a usemtl succeeds.
	curMaterial *model.Material

	// Lazily created material for meshes without a binding.
	stockMaterial *model.Material

	// Pending segment state.
	key         string
	smoothGroup int32
	pending     []pendingFace

	// Names of all emitted meshes.
	meshNames map[string]bool
}

// Create a new wavefront object reader.
func newWavefrontReader(opts config.Options) *wavefrontReader {
	mode := triangulateFan
	if opts.Polygon {
		mode = preservePolygon
	}

	return &wavefrontReader{
		logger: log.New("wavefront reader"),
		opts:   opts,
		mode:   mode,
		attrs: attributeStore{
			positions: make([]types.Vec3, 0),
			texCoords: make([]types.Vec2, 0),
			normals:   make([]types.Vec3, 0),
		},
		libraries: make([]*materialLibrary, 0),
		key:       defaultKey,
		meshNames: make(map[string]bool),
	}
}

// Load model from a wavefront object resource.
func (r *wavefrontReader) Load(res *asset.Resource) (*model.Model, error) {
	if r.model != nil {
		return nil, errors.New("wavefront reader: reader instances can only parse a single source")
	}

	r.logger.Noticef(`parsing model from "%s" (mode: %s)`, res.Path(), r.mode.meshKind())
	start := time.Now()
	r.model = model.New(res.Path())

	lineNum, err := r.parse(res)
	if err != nil {
		return nil, err
	}

	// Flush faces defined after the last boundary.
	if err = r.emitSegment(); err != nil {
		return nil, emitError(res.Path(), lineNum, "%w", err)
	}

	r.debugf(
		"loaded %d vertices, %d uvs, %d normals and %d meshes",
		len(r.attrs.positions), len(r.attrs.texCoords), len(r.attrs.normals), len(r.model.Meshes),
	)
	r.logger.Noticef("parsed model in %d ms", time.Since(start).Nanoseconds()/1e6)

	return r.model, nil
}

// Log a diagnostic message. Diagnostics are promoted to notice level when
// the debug option is set.
func (r *wavefrontReader) debugf(format string, args ...interface{}) {
	if r.opts.Debug {
		r.logger.Noticef(format, args...)
		return
	}
	r.logger.Debugf(format, args...)
}

// Parse the object file line by line. It returns the number of lines read.
func (r *wavefrontReader) parse(res *asset.Resource) (int, error) {
	var lineNum int

	scanner := newLineScanner(res)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		dir, args := parseDirective(line)
		switch dir {
		case directiveVertex:
			err = r.parseVertex(args)
		case directiveTexCoord:
			err = r.parseTexCoord(args)
		case directiveNormal:
			err = r.parseNormal(args)
		case directiveFace:
			err = r.parseFace(args)
		case directiveGroup:
			err = r.parseGroup(args)
		case directiveSmoothingGroup:
			err = r.parseSmoothingGroup(args)
		case directiveMaterialLib:
			r.parseMaterialLib(res, lineNum, args)
		case directiveUseMaterial:
			err = r.parseUseMaterial(res, lineNum, args)
		case directiveUnknown:
			r.debugf("[%s: %d] line skipped: %s", res.Path(), lineNum, abbreviate(line))
		}

		if err != nil {
			return lineNum, emitError(res.Path(), lineNum, "%w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return lineNum, emitError(res.Path(), lineNum, "read failed: %w", err)
	}

	return lineNum, nil
}

// Parse a "v x y z" directive. Positions are scaled and converted to a
// coordinate system with the Y and Z axes flipped.
func (r *wavefrontReader) parseVertex(args string) error {
	v, err := parseVec3(directiveVertex.String(), strings.Fields(args))
	if err != nil {
		return err
	}

	scale := r.opts.Scale
	v = types.Vec3{v[0] * scale, -v[1] * scale, -v[2] * scale}
	r.attrs.positions = append(r.attrs.positions, v)

	if r.opts.FlatXZ {
		r.attrs.texCoords = append(r.attrs.texCoords, types.Vec2{v[0], v[2]})
	}
	return nil
}

// Parse a "vt u v" directive. Either component may be "nan". The v
// component is flipped to move the texture origin to the top-left corner.
func (r *wavefrontReader) parseTexCoord(args string) error {
	tokens := strings.Fields(args)
	if len(tokens) < 2 {
		return argCountError(directiveTexCoord.String(), "2 arguments", len(tokens))
	}

	u, err := parseTexCoordComponent(tokens[0])
	if err != nil {
		return err
	}
	v, err := parseTexCoordComponent(tokens[1])
	if err != nil {
		return err
	}
	if !math32.IsNaN(v) {
		v = 1 - v
	}

	// In flat XZ mode the coordinate list mirrors the vertex list.
	if r.opts.FlatXZ {
		return nil
	}

	r.attrs.texCoords = append(r.attrs.texCoords, types.Vec2{u, v})
	return nil
}

// Parse a "vn x y z" directive.
func (r *wavefrontReader) parseNormal(args string) error {
	n, err := parseVec3(directiveNormal.String(), strings.Fields(args))
	if err != nil {
		return err
	}
	r.attrs.normals = append(r.attrs.normals, n)
	return nil
}

// Parse a "g name" directive. Faces collected under the previous name are
// emitted before the new name takes effect.
func (r *wavefrontReader) parseGroup(args string) error {
	if err := r.emitSegment(); err != nil {
		return err
	}

	r.key = args
	if r.key == "" {
		r.key = defaultKey
	}
	r.debugf("key = %s", r.key)
	return nil
}

// Parse a "s N" or "s off" directive.
func (r *wavefrontReader) parseSmoothingGroup(args string) error {
	if args == "" {
		return argCountError(directiveSmoothingGroup.String(), "1 argument", 0)
	}

	if strings.EqualFold(args, "off") {
		r.smoothGroup = 0
		return nil
	}

	group, err := strconv.ParseInt(args, 10, 32)
	if err != nil {
		return fmt.Errorf("could not parse smoothing group: %w", err)
	}
	if group < 0 {
		return fmt.Errorf("invalid smoothing group %d", group)
	}
	r.smoothGroup = int32(group)
	return nil
}

// Parse a "mtllib file1 file2 ..." directive. Library files are resolved
// relative to the object file. Failing to load a library is not fatal.
func (r *wavefrontReader) parseMaterialLib(res *asset.Resource, lineNum int, args string) {
	filenames := strings.Fields(args)
	if len(filenames) == 0 {
		r.logger.Warningf(`[%s: %d] "mtllib" without any library files; ignoring`, res.Path(), lineNum)
		return
	}

	for _, filename := range filenames {
		lib, err := r.loadMaterialLibrary(filename, res, lineNum)
		if err != nil {
			r.logger.Warningf(`[%s: %d] could not load material library "%s": %s`, res.Path(), lineNum, filename, err.Error())
		}
		if lib != nil {
			r.libraries = append(r.libraries, lib)
		}
	}
}

// Open and parse a material library. A partially parsed library is returned
// along with any read error.
func (r *wavefrontReader) loadMaterialLibrary(filename string, relTo *asset.Resource, lineNum int) (*materialLibrary, error) {
	res, err := asset.NewResource(filename, relTo)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	mr := newMaterialReader(r.logger, r.opts.Debug, fmt.Sprintf("%s:%d", relTo.Path(), lineNum))
	return mr.Read(res)
}

// Parse a "usemtl name" directive. Faces collected so far are emitted using
// the previous material. Unknown material names keep the current binding.
func (r *wavefrontReader) parseUseMaterial(res *asset.Resource, lineNum int, args string) error {
	if err := r.emitSegment(); err != nil {
		return err
	}

	if args == "" {
		r.logger.Warningf(`[%s: %d] "usemtl" without a material name; ignoring`, res.Path(), lineNum)
		return nil
	}

	for _, lib := range r.libraries {
		if mat := lib.lookup(args); mat != nil {
			r.curMaterial = mat
			return nil
		}
	}

	r.logger.Warningf(`[%s: %d] material "%s" not found; using "%s"`, res.Path(), lineNum, args, r.activeMaterial().Name)
	return nil
}

// Get the material bound to newly emitted meshes.
func (r *wavefrontReader) activeMaterial() *model.Material {
	if r.curMaterial != nil {
		return r.curMaterial
	}
	if r.stockMaterial == nil {
		r.stockMaterial = model.NewDefaultMaterial()
	}
	return r.stockMaterial
}

// Parse a texture coordinate component that may be "nan".
func parseTexCoordComponent(token string) (float32, error) {
	if strings.EqualFold(token, "nan") {
		return math32.NaN(), nil
	}

	val, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, err
	}
	return float32(val), nil
}

// Parse a float scalar value.
func parseFloat32(keyword string, tokens []string) (float32, error) {
	if len(tokens) < 1 {
		return 0, argCountError(keyword, "1 argument", len(tokens))
	}

	val, err := strconv.ParseFloat(tokens[0], 32)
	if err != nil {
		return 0, err
	}

	return float32(val), nil
}

// Parse a Vec3 row.
func parseVec3(keyword string, tokens []string) (types.Vec3, error) {
	if len(tokens) < 3 {
		return types.Vec3{}, argCountError(keyword, "3 arguments", len(tokens))
	}

	v := types.Vec3{}
	for tokIdx := 0; tokIdx < 3; tokIdx++ {
		coord, err := strconv.ParseFloat(tokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx] = float32(coord)
	}
	return v, nil
}
