package pbx

import (
	"errors"
	"testing"
)

const sampleProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {
		D11111111111111111111111 /* main.m in Sources */ = {
			isa = PBXBuildFile;
			fileRef = D22222222222222222222222;
		};
		D22222222222222222222222 /* main.m */ = {
			isa = PBXFileReference;
			lastKnownFileType = sourcecode.c.objc;
			path = main.m;
			sourceTree = "<group>";
		};
		D33333333333333333333333 = {
			isa = PBXGroup;
			children = (
				D22222222222222222222222,
			);
			sourceTree = "<group>";
		};
		D44444444444444444444444 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				D11111111111111111111111,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
		D55555555555555555555555 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_NAME = App;
				SDKROOT = iphoneos;
			};
			name = Debug;
		};
		D66666666666666666666666 /* Build configuration list */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				D55555555555555555555555,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Debug;
		};
		D77777777777777777777777 /* App */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = D66666666666666666666666;
			buildPhases = (
				D44444444444444444444444,
			);
			name = App;
			productType = "com.apple.product-type.application";
		};
		D88888888888888888888888 /* Project object */ = {
			isa = PBXProject;
			buildConfigurationList = D66666666666666666666666;
			compatibilityVersion = "Xcode 14.0";
			mainGroup = D33333333333333333333333;
			targets = (
				D77777777777777777777777,
			);
		};
	};
	rootObject = D88888888888888888888888 /* Project object */;
}
`

func TestParseProject(t *testing.T) {
	p, err := Parse([]byte(sampleProject))
	if err != nil {
		t.Fatal(err)
	}
	if p.ArchiveVersion != 1 || p.ObjectVersion != 56 {
		t.Errorf("versions %d, %d", p.ArchiveVersion, p.ObjectVersion)
	}
	if p.RootObjectRef != "D88888888888888888888888" {
		t.Errorf("root ref %q", p.RootObjectRef)
	}
	if p.Objects.Len() != 8 {
		t.Errorf("graph has %d objects", p.Objects.Len())
	}
	root, ok := p.Root()
	if !ok {
		t.Fatal("no root object")
	}
	if root.MainGroupRef != "D33333333333333333333333" {
		t.Errorf("main group %q", root.MainGroupRef)
	}
	h := p.Objects.Weak()
	targets := root.Targets(h)
	if len(targets) != 1 {
		t.Fatalf("got %d targets", len(targets))
	}
	target := targets[0].(*NativeTarget)
	if target.Name != "App" {
		t.Errorf("target name %q", target.Name)
	}
	phases := target.BuildPhases(h)
	if len(phases) != 1 {
		t.Fatalf("got %d phases", len(phases))
	}
	phase := phases[0].(*BuildPhase)
	files := phase.Files(h)
	if len(files) != 1 {
		t.Fatalf("got %d build files", len(files))
	}
	file, ok := files[0].File(h)
	if !ok {
		t.Fatal("file reference did not resolve")
	}
	if file.DisplayName() != "main.m" {
		t.Errorf("file display name %q", file.DisplayName())
	}
}

func TestParseMissingRootObject(t *testing.T) {
	_, err := Parse([]byte(`{archiveVersion = 1; objectVersion = 56; objects = {};}`))
	mf := &MissingField{}
	if !errors.As(err, &mf) || mf.Key != "root_object" {
		t.Errorf("got %v", err)
	}
}

func TestParseScalarObjectEntry(t *testing.T) {
	_, err := Parse([]byte(`{
		archiveVersion = 1;
		objectVersion = 56;
		objects = {AA0123456789ABCDEF012345 = nope;};
		rootObject = AA0123456789ABCDEF012345;
	}`))
	tm := &TypeMismatch{}
	if !errors.As(err, &tm) {
		t.Errorf("got %v", err)
	}
}

func TestUnknownKindPassthrough(t *testing.T) {
	p, err := Parse([]byte(`{
		archiveVersion = 1;
		objectVersion = 56;
		objects = {
			AA0123456789ABCDEF012345 = {
				isa = PBXFutureThing;
				custom = value;
			};
		};
		rootObject = AA0123456789ABCDEF012345;
	}`))
	if err != nil {
		t.Fatal(err)
	}
	o, ok := p.Objects.Get("AA0123456789ABCDEF012345")
	if !ok {
		t.Fatal("object not in graph")
	}
	u, ok := o.(*UnknownObject)
	if !ok {
		t.Fatalf("got %T", o)
	}
	if u.RawTag != "PBXFutureThing" {
		t.Errorf("raw tag %q", u.RawTag)
	}
	rec := u.ToRecord()
	if rec["isa"] == nil || rec["isa"].String != "PBXFutureThing" {
		t.Errorf("isa not restored: %v", rec["isa"])
	}
	if rec["custom"] == nil || rec["custom"].String != "value" {
		t.Errorf("custom field lost: %v", rec["custom"])
	}
}

func TestBuildConfigurationSettings(t *testing.T) {
	p, err := Parse([]byte(sampleProject))
	if err != nil {
		t.Fatal(err)
	}
	o, _ := p.Objects.Get("D55555555555555555555555")
	cfg := o.(*BuildConfiguration)
	if cfg.Name != "Debug" {
		t.Errorf("name %q", cfg.Name)
	}
	if s := cfg.Setting("PRODUCT_NAME"); s == nil || s.String != "App" {
		t.Errorf("PRODUCT_NAME: %v", s)
	}
	if s := cfg.Setting("OTHER_LDFLAGS"); s != nil {
		t.Errorf("absent setting: %v", s)
	}
}
