package pbx

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/kind"
)

// NewReferenceID generates a fresh globally unique object identifier
// in the 24-hex-digit shape pbxproj uses.
func NewReferenceID() string {
	u := uuid.New()
	hex := strings.ToUpper(strings.ReplaceAll(u.String(), "-", ""))
	return hex[:24]
}

// BuildConfiguration is one named set of build settings.
type BuildConfiguration struct {
	Name                 string
	BuildSettings        *ir.Node
	BaseConfigurationRef string

	rest Record
}

// NewBuildConfiguration makes a configuration with empty settings.
func NewBuildConfiguration(name string) *BuildConfiguration {
	return &BuildConfiguration{
		Name:          name,
		BuildSettings: ir.FromKeyVals(nil),
		rest:          Record{},
	}
}

func newBuildConfiguration(rec Record, _ Handle) (Object, error) {
	o := &BuildConfiguration{rest: rec}
	var err error
	if o.Name, err = rec.TakeString("name"); err != nil {
		return nil, err
	}
	if o.BuildSettings, err = rec.OptObject("build_settings"); err != nil {
		return nil, err
	}
	if o.BuildSettings == nil {
		o.BuildSettings = ir.FromKeyVals(nil)
	}
	if o.BaseConfigurationRef, err = rec.OptString("base_configuration_reference"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *BuildConfiguration) Kind() kind.Kind { return kind.XCBuildConfiguration }

// Setting returns the named build setting, or nil.
func (o *BuildConfiguration) Setting(name string) *ir.Node {
	return ir.Get(o.BuildSettings, name)
}

// SetSetting adds or replaces a build setting.
func (o *BuildConfiguration) SetSetting(name string, v *ir.Node) {
	o.BuildSettings.Set(name, v)
}

func (o *BuildConfiguration) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("XCBuildConfiguration")
	rec.PutString("name", o.Name)
	rec.PutNode("build_settings", o.BuildSettings)
	putOptString(rec, "base_configuration_reference", o.BaseConfigurationRef)
	return rec
}

// ConfigurationList aggregates build configuration references for a
// project or target.
type ConfigurationList struct {
	BuildConfigurationRefs        []string
	DefaultConfigurationIsVisible bool
	DefaultConfigurationName      string

	rest Record
}

func newConfigurationList(rec Record, _ Handle) (Object, error) {
	o := &ConfigurationList{rest: rec}
	var err error
	if o.BuildConfigurationRefs, err = rec.TakeStrings("build_configurations"); err != nil {
		return nil, err
	}
	if o.DefaultConfigurationIsVisible, err = rec.TakeFlag("default_configuration_is_visible"); err != nil {
		return nil, err
	}
	if o.DefaultConfigurationName, err = rec.OptString("default_configuration_name"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *ConfigurationList) Kind() kind.Kind { return kind.XCConfigurationList }

// SetBuildConfigurationRefs replaces the member references, returning
// the previous list.
func (o *ConfigurationList) SetBuildConfigurationRefs(refs []string) []string {
	old := o.BuildConfigurationRefs
	o.BuildConfigurationRefs = refs
	return old
}

// BuildConfigurations resolves the member references, silently
// skipping dangling ids.
func (o *ConfigurationList) BuildConfigurations(h Handle) []*BuildConfiguration {
	res := make([]*BuildConfiguration, 0, len(o.BuildConfigurationRefs))
	for _, id := range o.BuildConfigurationRefs {
		obj, ok := h.Get(id)
		if !ok {
			continue
		}
		if c, ok := obj.(*BuildConfiguration); ok {
			res = append(res, c)
		}
	}
	return res
}

// ConfigurationByName returns the member configuration with the given
// name, if it exists.
func (o *ConfigurationList) ConfigurationByName(h Handle, name string) (*BuildConfiguration, bool) {
	for _, c := range o.BuildConfigurations(h) {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// AddDefaultConfigurations inserts fresh Debug and Release
// configurations into g and appends their ids, Debug first. Both
// objects are inserted before either id becomes visible in the member
// list, so no reader can observe a reference without its object.
func (o *ConfigurationList) AddDefaultConfigurations(g *Graph) (debugID, releaseID string) {
	debugID = NewReferenceID()
	g.Insert(debugID, NewBuildConfiguration("Debug"))
	releaseID = NewReferenceID()
	g.Insert(releaseID, NewBuildConfiguration("Release"))
	o.BuildConfigurationRefs = append(o.BuildConfigurationRefs, debugID, releaseID)
	return debugID, releaseID
}

func (o *ConfigurationList) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("XCConfigurationList")
	rec.PutStrings("build_configurations", o.BuildConfigurationRefs)
	rec.PutFlag("default_configuration_is_visible", o.DefaultConfigurationIsVisible)
	putOptString(rec, "default_configuration_name", o.DefaultConfigurationName)
	return rec
}
