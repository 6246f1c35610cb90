package pbx

import (
	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/kind"
)

// ProjectObject is the PBXProject entry every document's root
// reference points at.
type ProjectObject struct {
	BuildConfigurationListRef string
	MainGroupRef              string
	CompatibilityVersion      string
	DevelopmentRegion         string
	KnownRegions              []string
	ProductRefGroupRef        string
	ProjectDirPath            string
	ProjectRoot               string
	TargetRefs                []string
	PackageReferenceRefs      []string
	Attributes                *ir.Node

	rest Record
}

func newProjectObject(rec Record, _ Handle) (Object, error) {
	o := &ProjectObject{rest: rec}
	var err error
	if o.BuildConfigurationListRef, err = rec.TakeString("build_configuration_list"); err != nil {
		return nil, err
	}
	if o.MainGroupRef, err = rec.TakeString("main_group"); err != nil {
		return nil, err
	}
	if o.CompatibilityVersion, err = rec.OptString("compatibility_version"); err != nil {
		return nil, err
	}
	if o.DevelopmentRegion, err = rec.OptString("development_region"); err != nil {
		return nil, err
	}
	if o.KnownRegions, err = rec.OptStrings("known_regions"); err != nil {
		return nil, err
	}
	if o.ProductRefGroupRef, err = rec.OptString("product_ref_group"); err != nil {
		return nil, err
	}
	if o.ProjectDirPath, err = rec.OptString("project_dir_path"); err != nil {
		return nil, err
	}
	if o.ProjectRoot, err = rec.OptString("project_root"); err != nil {
		return nil, err
	}
	if o.TargetRefs, err = rec.OptStrings("targets"); err != nil {
		return nil, err
	}
	if o.PackageReferenceRefs, err = rec.OptStrings("package_references"); err != nil {
		return nil, err
	}
	if o.Attributes, err = rec.OptObject("attributes"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *ProjectObject) Kind() kind.Kind { return kind.PBXProject }

// Targets resolves the target references, skipping dangling ids.
func (o *ProjectObject) Targets(h Handle) []Object {
	res := make([]Object, 0, len(o.TargetRefs))
	for _, id := range o.TargetRefs {
		if t, ok := h.Get(id); ok {
			res = append(res, t)
		}
	}
	return res
}

func (o *ProjectObject) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXProject")
	rec.PutString("build_configuration_list", o.BuildConfigurationListRef)
	rec.PutString("main_group", o.MainGroupRef)
	putOptString(rec, "compatibility_version", o.CompatibilityVersion)
	putOptString(rec, "development_region", o.DevelopmentRegion)
	if o.KnownRegions != nil {
		rec.PutStrings("known_regions", o.KnownRegions)
	}
	putOptString(rec, "product_ref_group", o.ProductRefGroupRef)
	putOptString(rec, "project_dir_path", o.ProjectDirPath)
	putOptString(rec, "project_root", o.ProjectRoot)
	if o.TargetRefs != nil {
		rec.PutStrings("targets", o.TargetRefs)
	}
	if o.PackageReferenceRefs != nil {
		rec.PutStrings("package_references", o.PackageReferenceRefs)
	}
	rec.PutNode("attributes", o.Attributes)
	return rec
}

// NativeTarget builds a product (app, framework, test bundle).
type NativeTarget struct {
	Name                         string
	ProductName                  string
	ProductType                  string
	ProductReferenceRef          string
	BuildConfigurationListRef    string
	BuildPhaseRefs               []string
	BuildRuleRefs                []string
	DependencyRefs               []string
	PackageProductDependencyRefs []string

	rest Record
}

func newNativeTarget(rec Record, _ Handle) (Object, error) {
	o := &NativeTarget{rest: rec}
	var err error
	if o.Name, err = rec.TakeString("name"); err != nil {
		return nil, err
	}
	if o.BuildConfigurationListRef, err = rec.TakeString("build_configuration_list"); err != nil {
		return nil, err
	}
	if o.ProductName, err = rec.OptString("product_name"); err != nil {
		return nil, err
	}
	if o.ProductType, err = rec.OptString("product_type"); err != nil {
		return nil, err
	}
	if o.ProductReferenceRef, err = rec.OptString("product_reference"); err != nil {
		return nil, err
	}
	if o.BuildPhaseRefs, err = rec.OptStrings("build_phases"); err != nil {
		return nil, err
	}
	if o.BuildRuleRefs, err = rec.OptStrings("build_rules"); err != nil {
		return nil, err
	}
	if o.DependencyRefs, err = rec.OptStrings("dependencies"); err != nil {
		return nil, err
	}
	if o.PackageProductDependencyRefs, err = rec.OptStrings("package_product_dependencies"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *NativeTarget) Kind() kind.Kind { return kind.PBXNativeTarget }

// BuildPhases resolves the phase references, skipping dangling ids.
func (o *NativeTarget) BuildPhases(h Handle) []Object {
	res := make([]Object, 0, len(o.BuildPhaseRefs))
	for _, id := range o.BuildPhaseRefs {
		if p, ok := h.Get(id); ok {
			res = append(res, p)
		}
	}
	return res
}

func (o *NativeTarget) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXNativeTarget")
	rec.PutString("name", o.Name)
	rec.PutString("build_configuration_list", o.BuildConfigurationListRef)
	putOptString(rec, "product_name", o.ProductName)
	putOptString(rec, "product_type", o.ProductType)
	putOptString(rec, "product_reference", o.ProductReferenceRef)
	if o.BuildPhaseRefs != nil {
		rec.PutStrings("build_phases", o.BuildPhaseRefs)
	}
	if o.BuildRuleRefs != nil {
		rec.PutStrings("build_rules", o.BuildRuleRefs)
	}
	if o.DependencyRefs != nil {
		rec.PutStrings("dependencies", o.DependencyRefs)
	}
	if o.PackageProductDependencyRefs != nil {
		rec.PutStrings("package_product_dependencies", o.PackageProductDependencyRefs)
	}
	return rec
}

// AggregateTarget groups other targets without producing a product.
type AggregateTarget struct {
	Name                      string
	ProductName               string
	BuildConfigurationListRef string
	BuildPhaseRefs            []string
	DependencyRefs            []string

	rest Record
}

func newAggregateTarget(rec Record, _ Handle) (Object, error) {
	o := &AggregateTarget{rest: rec}
	var err error
	if o.Name, err = rec.TakeString("name"); err != nil {
		return nil, err
	}
	if o.BuildConfigurationListRef, err = rec.TakeString("build_configuration_list"); err != nil {
		return nil, err
	}
	if o.ProductName, err = rec.OptString("product_name"); err != nil {
		return nil, err
	}
	if o.BuildPhaseRefs, err = rec.OptStrings("build_phases"); err != nil {
		return nil, err
	}
	if o.DependencyRefs, err = rec.OptStrings("dependencies"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *AggregateTarget) Kind() kind.Kind { return kind.PBXAggregateTarget }

func (o *AggregateTarget) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXAggregateTarget")
	rec.PutString("name", o.Name)
	rec.PutString("build_configuration_list", o.BuildConfigurationListRef)
	putOptString(rec, "product_name", o.ProductName)
	if o.BuildPhaseRefs != nil {
		rec.PutStrings("build_phases", o.BuildPhaseRefs)
	}
	if o.DependencyRefs != nil {
		rec.PutStrings("dependencies", o.DependencyRefs)
	}
	return rec
}

// LegacyTarget shells out to an external build tool.
type LegacyTarget struct {
	Name                           string
	BuildToolPath                  string
	BuildArgumentsString           string
	BuildWorkingDirectory          string
	PassBuildSettingsInEnvironment bool
	BuildConfigurationListRef      string
	DependencyRefs                 []string

	rest Record
}

func newLegacyTarget(rec Record, _ Handle) (Object, error) {
	o := &LegacyTarget{rest: rec}
	var err error
	if o.Name, err = rec.TakeString("name"); err != nil {
		return nil, err
	}
	if o.BuildConfigurationListRef, err = rec.TakeString("build_configuration_list"); err != nil {
		return nil, err
	}
	if o.BuildToolPath, err = rec.OptString("build_tool_path"); err != nil {
		return nil, err
	}
	if o.BuildArgumentsString, err = rec.OptString("build_arguments_string"); err != nil {
		return nil, err
	}
	if o.BuildWorkingDirectory, err = rec.OptString("build_working_directory"); err != nil {
		return nil, err
	}
	if o.PassBuildSettingsInEnvironment, err = rec.OptFlag("pass_build_settings_in_environment"); err != nil {
		return nil, err
	}
	if o.DependencyRefs, err = rec.OptStrings("dependencies"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *LegacyTarget) Kind() kind.Kind { return kind.PBXLegacyTarget }

func (o *LegacyTarget) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXLegacyTarget")
	rec.PutString("name", o.Name)
	rec.PutString("build_configuration_list", o.BuildConfigurationListRef)
	putOptString(rec, "build_tool_path", o.BuildToolPath)
	putOptString(rec, "build_arguments_string", o.BuildArgumentsString)
	putOptString(rec, "build_working_directory", o.BuildWorkingDirectory)
	rec.PutFlag("pass_build_settings_in_environment", o.PassBuildSettingsInEnvironment)
	if o.DependencyRefs != nil {
		rec.PutStrings("dependencies", o.DependencyRefs)
	}
	return rec
}

// TargetDependency links a target to one it depends on, possibly via a
// container item proxy.
type TargetDependency struct {
	TargetRef      string
	TargetProxyRef string
	Name           string

	objects Handle
	rest    Record
}

func newTargetDependency(rec Record, h Handle) (Object, error) {
	o := &TargetDependency{objects: h, rest: rec}
	var err error
	if o.TargetRef, err = rec.OptString("target"); err != nil {
		return nil, err
	}
	if o.TargetProxyRef, err = rec.OptString("target_proxy"); err != nil {
		return nil, err
	}
	if o.Name, err = rec.OptString("name"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *TargetDependency) Kind() kind.Kind { return kind.PBXTargetDependency }

// DisplayName derives a human name: the explicit name if present,
// otherwise the depended-on target's name looked up through the weak
// graph handle. Yields "" when neither resolves.
func (o *TargetDependency) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	obj, ok := o.objects.Get(o.TargetRef)
	if !ok {
		return ""
	}
	switch t := obj.(type) {
	case *NativeTarget:
		return t.Name
	case *AggregateTarget:
		return t.Name
	case *LegacyTarget:
		return t.Name
	}
	return ""
}

func (o *TargetDependency) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXTargetDependency")
	putOptString(rec, "target", o.TargetRef)
	putOptString(rec, "target_proxy", o.TargetProxyRef)
	putOptString(rec, "name", o.Name)
	return rec
}

// ContainerItemProxy names an object inside another container.
type ContainerItemProxy struct {
	ContainerPortalRef   string
	ProxyType            int64
	RemoteGlobalIDString string
	RemoteInfo           string

	rest Record
}

func newContainerItemProxy(rec Record, _ Handle) (Object, error) {
	o := &ContainerItemProxy{rest: rec}
	var err error
	if o.ContainerPortalRef, err = rec.TakeString("container_portal"); err != nil {
		return nil, err
	}
	if o.ProxyType, err = rec.OptNumber("proxy_type"); err != nil {
		return nil, err
	}
	if o.RemoteGlobalIDString, err = rec.OptString("remote_global_id_string"); err != nil {
		return nil, err
	}
	if o.RemoteInfo, err = rec.OptString("remote_info"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *ContainerItemProxy) Kind() kind.Kind { return kind.PBXContainerItemProxy }

func (o *ContainerItemProxy) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXContainerItemProxy")
	rec.PutString("container_portal", o.ContainerPortalRef)
	rec.PutNumber("proxy_type", o.ProxyType)
	putOptString(rec, "remote_global_id_string", o.RemoteGlobalIDString)
	putOptString(rec, "remote_info", o.RemoteInfo)
	return rec
}

// BuildRule maps a file type to a custom compiler or script.
type BuildRule struct {
	CompilerSpec string
	FileType     string
	FilePatterns string
	IsEditable   bool
	Name         string
	OutputFiles  []string
	InputFiles   []string
	Script       string

	rest Record
}

func newBuildRule(rec Record, _ Handle) (Object, error) {
	o := &BuildRule{rest: rec}
	var err error
	if o.CompilerSpec, err = rec.OptString("compiler_spec"); err != nil {
		return nil, err
	}
	if o.FileType, err = rec.OptString("file_type"); err != nil {
		return nil, err
	}
	if o.FilePatterns, err = rec.OptString("file_patterns"); err != nil {
		return nil, err
	}
	if o.IsEditable, err = rec.OptFlag("is_editable"); err != nil {
		return nil, err
	}
	if o.Name, err = rec.OptString("name"); err != nil {
		return nil, err
	}
	if o.OutputFiles, err = rec.OptStrings("output_files"); err != nil {
		return nil, err
	}
	if o.InputFiles, err = rec.OptStrings("input_files"); err != nil {
		return nil, err
	}
	if o.Script, err = rec.OptString("script"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *BuildRule) Kind() kind.Kind { return kind.PBXBuildRule }

func (o *BuildRule) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXBuildRule")
	putOptString(rec, "compiler_spec", o.CompilerSpec)
	putOptString(rec, "file_type", o.FileType)
	putOptString(rec, "file_patterns", o.FilePatterns)
	rec.PutFlag("is_editable", o.IsEditable)
	putOptString(rec, "name", o.Name)
	if o.OutputFiles != nil {
		rec.PutStrings("output_files", o.OutputFiles)
	}
	if o.InputFiles != nil {
		rec.PutStrings("input_files", o.InputFiles)
	}
	putOptString(rec, "script", o.Script)
	return rec
}
