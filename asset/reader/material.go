package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/meshkit/asset"
	"github.com/achilleasa/meshkit/asset/model"
	"github.com/achilleasa/meshkit/log"
)

// A materialLibrary holds the materials defined by one mtl file.
type materialLibrary struct {
	path      string
	materials map[string]*model.Material

	// Material names in definition order.
	names []string
}

// Lookup a material by name.
func (l *materialLibrary) lookup(name string) *model.Material {
	return l.materials[name]
}

// A mtlDirective identifies the statement type of a material library line.
type mtlDirective uint8

// The material library directives.
const (
	mtlUnknown mtlDirective = iota
	mtlNewMaterial
	mtlDiffuseColor
	mtlSpecularColor
	mtlSpecularExponent
	mtlDiffuseMap
	mtlSpecularMap
	mtlBumpMap
	mtlIgnored
)

// Recognized directives that have no effect on the imported materials.
var ignoredMtlDirectives = map[string]string{
	"Ka":        "ambient reflectivity",
	"Tf":        "transmission filter",
	"illum":     "illumination model",
	"d":         "dissolve",
	"Tr":        "transparency",
	"sharpness": "sharpness",
	"Ni":        "optical density",
	"map_Ka":    "ambient reflectivity map",
	"map_Ns":    "specular exponent map",
	"map_d":     "dissolve map",
	"disp":      "displacement map",
	"decal":     "decal stencil map",
	"refl":      "reflection map",
	"map_aat":   "anti-aliasing",
}

// Map a material library keyword to its directive. The returned property key
// identifies the material property a directive sets; aliases share a key.
func parseMtlDirective(keyword string) (dir mtlDirective, propKey string) {
	switch keyword {
	case "newmtl":
		return mtlNewMaterial, keyword
	case "Kd":
		return mtlDiffuseColor, keyword
	case "Ks":
		return mtlSpecularColor, keyword
	case "Ns":
		return mtlSpecularExponent, keyword
	case "map_Kd":
		return mtlDiffuseMap, keyword
	case "map_Ks":
		return mtlSpecularMap, keyword
	case "bump", "map_bump", "map_Bump":
		return mtlBumpMap, "bump"
	}

	if _, ignored := ignoredMtlDirectives[keyword]; ignored {
		return mtlIgnored, keyword
	}
	return mtlUnknown, keyword
}

type materialReader struct {
	logger log.Logger
	debug  bool

	// Describes where the library was referenced from.
	referencedFrom string

	lib *materialLibrary

	// Material receiving property directives; nil before the first
	// newmtl and after a duplicate one.
	curMaterial *model.Material

	// Properties already set on the current material.
	readProperties map[string]bool
}

// Create a reader for a single material library.
func newMaterialReader(logger log.Logger, debug bool, referencedFrom string) *materialReader {
	return &materialReader{
		logger:         logger,
		debug:          debug,
		referencedFrom: referencedFrom,
		readProperties: make(map[string]bool),
	}
}

func (mr *materialReader) debugf(format string, args ...interface{}) {
	if mr.debug {
		mr.logger.Noticef(format, args...)
		return
	}
	mr.logger.Debugf(format, args...)
}

func (mr *materialReader) warnf(res *asset.Resource, lineNum int, format string, args ...interface{}) {
	args = append([]interface{}{res.Path(), lineNum}, args...)
	mr.logger.Warningf("[%s: %d] "+format, args...)
}

// Parse a wavefront material library. Problems with individual lines are
// logged and skipped; the returned library is valid even when an error
// interrupted the read.
func (mr *materialReader) Read(res *asset.Resource) (*materialLibrary, error) {
	mr.debugf(`reading material library "%s" (referenced from %s)`, res.Path(), mr.referencedFrom)

	mr.lib = &materialLibrary{
		path:      res.Path(),
		materials: make(map[string]*model.Material),
		names:     make([]string, 0),
	}

	var lineNum int
	scanner := newLineScanner(res)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		mr.parseLine(res, lineNum, line)
	}

	if err := scanner.Err(); err != nil {
		return mr.lib, emitError(res.Path(), lineNum, "read failed: %w", err)
	}
	return mr.lib, nil
}

func (mr *materialReader) parseLine(res *asset.Resource, lineNum int, line string) {
	keyword, args := splitKeyword(line)
	dir, propKey := parseMtlDirective(keyword)

	switch dir {
	case mtlUnknown:
		mr.debugf("[%s: %d] no parser found for: %s", res.Path(), lineNum, abbreviate(line))
		return
	case mtlNewMaterial:
		mr.parseNewMaterial(res, lineNum, args)
		return
	}

	if mr.curMaterial == nil {
		mr.warnf(res, lineNum, `got "%s" without a valid "newmtl"; ignoring`, keyword)
		return
	}

	if mr.readProperties[propKey] {
		mr.warnf(res, lineNum, `"%s" already read for material "%s"; ignoring`, keyword, mr.curMaterial.Name)
		return
	}
	mr.readProperties[propKey] = true

	if err := mr.setProperty(res, dir, keyword, args); err != nil {
		mr.warnf(res, lineNum, `could not parse "%s" for material "%s": %s; ignoring`, keyword, mr.curMaterial.Name, err.Error())
	}
}

// Apply a property directive to the current material. The material is left
// untouched if the value cannot be parsed.
func (mr *materialReader) setProperty(res *asset.Resource, dir mtlDirective, keyword, args string) error {
	mat := mr.curMaterial

	switch dir {
	case mtlDiffuseColor, mtlSpecularColor:
		color, err := parseVec3(keyword, strings.Fields(args))
		if err != nil {
			return err
		}
		if dir == mtlDiffuseColor {
			mat.DiffuseColor = color
		} else {
			mat.SpecularColor = color
		}
	case mtlSpecularExponent:
		power, err := parseFloat32(keyword, strings.Fields(args))
		if err != nil {
			return err
		}
		mat.SpecularPower = power
	case mtlDiffuseMap, mtlSpecularMap, mtlBumpMap:
		texPath, err := mr.resolveTexture(res, keyword, args)
		if err != nil {
			return err
		}
		switch dir {
		case mtlDiffuseMap:
			mat.DiffuseMap = texPath
		case mtlSpecularMap:
			mat.SpecularMap = texPath
		default:
			mat.BumpMap = texPath
		}
	case mtlIgnored:
		mr.debugf("%s (%s) is not supported; ignoring", ignoredMtlDirectives[keyword], keyword)
	}
	return nil
}

// Start a new material. Redefinitions of a material within the same library
// are ignored together with their properties.
func (mr *materialReader) parseNewMaterial(res *asset.Resource, lineNum int, name string) {
	if name == "" {
		mr.warnf(res, lineNum, `"newmtl" without a material name; ignoring`)
		mr.curMaterial = nil
		return
	}

	if _, exists := mr.lib.materials[name]; exists {
		mr.warnf(res, lineNum, `material "%s" already defined; ignoring`, name)
		mr.curMaterial = nil
		return
	}

	mr.curMaterial = model.NewMaterial(name)
	mr.readProperties = make(map[string]bool)
	mr.lib.materials[name] = mr.curMaterial
	mr.lib.names = append(mr.lib.names, name)
	mr.debugf("reading material %s", name)
}

// Argument count ranges for the texture map options; options with a range
// accept up to max numeric arguments.
var mapOptionArgs = map[string][2]int{
	"-blendu":  {1, 1},
	"-blendv":  {1, 1},
	"-boost":   {1, 1},
	"-mm":      {2, 2},
	"-o":       {1, 3},
	"-s":       {1, 3},
	"-t":       {1, 3},
	"-texres":  {1, 1},
	"-clamp":   {1, 1},
	"-bm":      {1, 1},
	"-imfchan": {1, 1},
	"-type":    {1, 1},
	"-cc":      {1, 1},
}

// Resolve a texture map path relative to the material library. Map options
// (e.g. "-bm 0.5") preceding the filename are skipped.
func (mr *materialReader) resolveTexture(res *asset.Resource, keyword, args string) (string, error) {
	filename, err := textureFilename(keyword, args)
	if err != nil {
		return "", err
	}

	texPath, err := asset.ResolvePath(filename, res)
	if err != nil {
		return "", err
	}
	mr.debugf("%s for material %s: %s", keyword, mr.curMaterial.Name, texPath)
	return texPath, nil
}

// Strip the map options from a texture map statement and return the
// filename that follows them.
func textureFilename(keyword, args string) (string, error) {
	tokens := strings.Fields(args)
	for len(tokens) != 0 && strings.HasPrefix(tokens[0], "-") {
		argRange, known := mapOptionArgs[tokens[0]]
		if !known {
			return "", fmt.Errorf("unsupported map option %q", tokens[0])
		}
		if len(tokens) <= argRange[0] {
			return "", fmt.Errorf("map option %q expects %d argument(s)", tokens[0], argRange[0])
		}
		tokens = tokens[1+argRange[0]:]

		for optional := argRange[1] - argRange[0]; optional > 0 && len(tokens) != 0; optional-- {
			if _, err := strconv.ParseFloat(tokens[0], 32); err != nil {
				break
			}
			tokens = tokens[1:]
		}
	}

	if len(tokens) == 0 {
		return "", fmt.Errorf(`"%s" does not specify a filename`, keyword)
	}
	return strings.Join(tokens, " "), nil
}
