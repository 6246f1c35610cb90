package pbx

import (
	"testing"

	"github.com/pbx-format/go-pbx/token"
)

func TestNewReferenceID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewReferenceID()
		if !token.IsReference(id) {
			t.Fatalf("NewReferenceID() = %q, not reference shaped", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestConfigurationListResolution(t *testing.T) {
	g := NewGraph()
	g.Insert("A", NewBuildConfiguration("Debug"))
	list := &ConfigurationList{
		BuildConfigurationRefs: []string{"A", "DANGLING", "B"},
		rest:                   Record{},
	}
	g.Insert("B", NewBuildConfiguration("Release"))
	h := g.Weak()
	cfgs := list.BuildConfigurations(h)
	if len(cfgs) != 2 {
		t.Fatalf("got %d configurations, dangling ref not skipped", len(cfgs))
	}
	if cfgs[0].Name != "Debug" || cfgs[1].Name != "Release" {
		t.Errorf("order: %q, %q", cfgs[0].Name, cfgs[1].Name)
	}
	cfg, ok := list.ConfigurationByName(h, "Release")
	if !ok || cfg.Name != "Release" {
		t.Errorf("ConfigurationByName: %v %v", cfg, ok)
	}
	if _, ok := list.ConfigurationByName(h, "Profile"); ok {
		t.Error("found nonexistent configuration")
	}
}

func TestAddDefaultConfigurations(t *testing.T) {
	g := NewGraph()
	list := &ConfigurationList{rest: Record{}}
	debugID, releaseID := list.AddDefaultConfigurations(g)
	if len(list.BuildConfigurationRefs) != 2 {
		t.Fatalf("got %d refs", len(list.BuildConfigurationRefs))
	}
	if list.BuildConfigurationRefs[0] != debugID || list.BuildConfigurationRefs[1] != releaseID {
		t.Errorf("ref order %v", list.BuildConfigurationRefs)
	}
	cfgs := list.BuildConfigurations(g.Weak())
	if len(cfgs) != 2 {
		t.Fatalf("refs do not all resolve: %d", len(cfgs))
	}
	if cfgs[0].Name != "Debug" || cfgs[1].Name != "Release" {
		t.Errorf("names: %q, %q", cfgs[0].Name, cfgs[1].Name)
	}
	if cfgs[0].BuildSettings == nil || len(cfgs[0].BuildSettings.Fields) != 0 {
		t.Errorf("fresh configuration settings: %v", cfgs[0].BuildSettings)
	}
}

func TestSetBuildConfigurationRefs(t *testing.T) {
	list := &ConfigurationList{BuildConfigurationRefs: []string{"A"}, rest: Record{}}
	old := list.SetBuildConfigurationRefs([]string{"B", "C"})
	if len(old) != 1 || old[0] != "A" {
		t.Errorf("old refs %v", old)
	}
	if len(list.BuildConfigurationRefs) != 2 {
		t.Errorf("new refs %v", list.BuildConfigurationRefs)
	}
}

func TestRemoteSwiftPackageReferenceName(t *testing.T) {
	tts := []struct {
		url string
		e   string
	}{
		{"https://github.com/apple/swift-collections.git", "swift-collections"},
		{"https://github.com/apple/swift-argument-parser", "swift-argument-parser"},
		{"", ""},
	}
	for _, tt := range tts {
		o := &RemoteSwiftPackageReference{RepositoryURL: tt.url, rest: Record{}}
		if got := o.Name(); got != tt.e {
			t.Errorf("Name(%q) = %q, want %q", tt.url, got, tt.e)
		}
	}
}

func TestTargetDependencyDisplayName(t *testing.T) {
	g := NewGraph()
	g.Insert("T", &NativeTarget{Name: "App", rest: Record{}})
	dep := &TargetDependency{TargetRef: "T", objects: g.Weak(), rest: Record{}}
	if got := dep.DisplayName(); got != "App" {
		t.Errorf("DisplayName() = %q", got)
	}
	dangling := &TargetDependency{TargetRef: "GONE", objects: g.Weak(), rest: Record{}}
	if got := dangling.DisplayName(); got != "" {
		t.Errorf("dangling DisplayName() = %q, want empty", got)
	}
	named := &TargetDependency{Name: "explicit", TargetRef: "T", objects: g.Weak(), rest: Record{}}
	if got := named.DisplayName(); got != "explicit" {
		t.Errorf("named DisplayName() = %q", got)
	}
}

func TestShellScriptShowEnvVarsRoundTrip(t *testing.T) {
	rec := mustRecord(t, `{isa = PBXShellScriptBuildPhase; showEnvVarsInLog = 0;}`)
	rec.TakeKind()
	o, err := newShellScriptBuildPhase(rec, Handle{})
	if err != nil {
		t.Fatal(err)
	}
	out := o.ToRecord()
	v, ok := out["show_env_vars_in_log"]
	if !ok {
		t.Fatalf("show_env_vars_in_log lost on round trip: %v", out)
	}
	if *v.Int64 != 0 {
		t.Errorf("show_env_vars_in_log = %d, want 0", *v.Int64)
	}

	rec = mustRecord(t, `{isa = PBXShellScriptBuildPhase;}`)
	rec.TakeKind()
	o, err = newShellScriptBuildPhase(rec, Handle{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := o.ToRecord()["show_env_vars_in_log"]; ok {
		t.Error("absent show_env_vars_in_log materialized on round trip")
	}
}

func TestToRecordOmitsAbsentFields(t *testing.T) {
	rec := mustRecord(t, `{isa = PBXProject; buildConfigurationList = A; mainGroup = B;}`)
	rec.TakeKind()
	o, err := newProjectObject(rec, Handle{})
	if err != nil {
		t.Fatal(err)
	}
	out := o.ToRecord()
	for _, key := range []string{"targets", "package_references", "known_regions"} {
		if _, ok := out[key]; ok {
			t.Errorf("absent %s materialized on round trip", key)
		}
	}

	rec = mustRecord(t, `{isa = PBXNativeTarget; name = App; buildConfigurationList = A;}`)
	rec.TakeKind()
	o, err = newNativeTarget(rec, Handle{})
	if err != nil {
		t.Fatal(err)
	}
	out = o.ToRecord()
	for _, key := range []string{"build_phases", "dependencies", "build_rules"} {
		if _, ok := out[key]; ok {
			t.Errorf("absent %s materialized on round trip", key)
		}
	}

	rec = mustRecord(t, `{isa = PBXCopyFilesBuildPhase;}`)
	rec.TakeKind()
	o, err = newCopyFilesBuildPhase(rec, Handle{})
	if err != nil {
		t.Fatal(err)
	}
	out = o.ToRecord()
	for _, key := range []string{"dst_path", "dst_subfolder_spec", "files"} {
		if _, ok := out[key]; ok {
			t.Errorf("absent %s materialized on round trip", key)
		}
	}
}

func TestCopyFilesEmptyDstPathKept(t *testing.T) {
	rec := mustRecord(t, `{isa = PBXCopyFilesBuildPhase; dstPath = ""; dstSubfolderSpec = 16;}`)
	rec.TakeKind()
	o, err := newCopyFilesBuildPhase(rec, Handle{})
	if err != nil {
		t.Fatal(err)
	}
	out := o.ToRecord()
	v, ok := out["dst_path"]
	if !ok || v.String != "" {
		t.Errorf("empty dst_path not preserved: %v", v)
	}
	sub, ok := out["dst_subfolder_spec"]
	if !ok || *sub.Int64 != 16 {
		t.Errorf("dst_subfolder_spec: %v", sub)
	}
}

func TestShellScriptDefaults(t *testing.T) {
	rec := mustRecord(t, `{isa = PBXShellScriptBuildPhase; files = (); buildActionMask = 2147483647; runOnlyForDeploymentPostprocessing = 0;}`)
	rec.TakeKind()
	o, err := newShellScriptBuildPhase(rec, Handle{})
	if err != nil {
		t.Fatal(err)
	}
	sh := o.(*ShellScriptBuildPhase)
	if sh.ShellPath != "/bin/sh" {
		t.Errorf("default shell path %q", sh.ShellPath)
	}
}
