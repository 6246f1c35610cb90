package pbx

import "github.com/pbx-format/go-pbx/kind"

// defaultBuildActionMask is the value Xcode writes for ordinary build
// phases.
const defaultBuildActionMask = 2147483647

// BuildPhase is the shared shape of the sources, frameworks,
// resources, headers, and rez phases.
type BuildPhase struct {
	FileRefs                           []string
	BuildActionMask                    int64
	RunOnlyForDeploymentPostprocessing bool

	kind kind.Kind
	rest Record
}

func newBuildPhase(k kind.Kind) constructor {
	return func(rec Record, _ Handle) (Object, error) {
		o := &BuildPhase{kind: k, BuildActionMask: defaultBuildActionMask, rest: rec}
		if err := o.consumeCommon(rec); err != nil {
			return nil, err
		}
		return o, nil
	}
}

func (o *BuildPhase) consumeCommon(rec Record) error {
	var err error
	if o.FileRefs, err = rec.OptStrings("files"); err != nil {
		return err
	}
	if _, ok := rec["build_action_mask"]; ok {
		if o.BuildActionMask, err = rec.TakeNumber("build_action_mask"); err != nil {
			return err
		}
	}
	if o.RunOnlyForDeploymentPostprocessing, err = rec.OptFlag("run_only_for_deployment_postprocessing"); err != nil {
		return err
	}
	return nil
}

func (o *BuildPhase) Kind() kind.Kind { return o.kind }

// Files resolves the member build files, skipping dangling references.
func (o *BuildPhase) Files(h Handle) []*BuildFile {
	return resolveBuildFiles(h, o.FileRefs)
}

func resolveBuildFiles(h Handle, refs []string) []*BuildFile {
	res := make([]*BuildFile, 0, len(refs))
	for _, id := range refs {
		obj, ok := h.Get(id)
		if !ok {
			continue
		}
		if f, ok := obj.(*BuildFile); ok {
			res = append(res, f)
		}
	}
	return res
}

func (o *BuildPhase) putCommon(rec Record) {
	if o.FileRefs != nil {
		rec.PutStrings("files", o.FileRefs)
	}
	rec.PutNumber("build_action_mask", o.BuildActionMask)
	rec.PutFlag("run_only_for_deployment_postprocessing", o.RunOnlyForDeploymentPostprocessing)
}

func (o *BuildPhase) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode(o.kind.Tag())
	o.putCommon(rec)
	return rec
}

// CopyFilesBuildPhase copies files into a destination inside the
// product.
type CopyFilesBuildPhase struct {
	BuildPhase
	Name             string
	DstPath          string
	DstSubfolderSpec int64

	hasDstPath bool
	hasDstSpec bool
}

func newCopyFilesBuildPhase(rec Record, _ Handle) (Object, error) {
	o := &CopyFilesBuildPhase{}
	o.kind = kind.PBXCopyFilesBuildPhase
	o.BuildActionMask = defaultBuildActionMask
	o.rest = rec
	if err := o.consumeCommon(rec); err != nil {
		return nil, err
	}
	var err error
	if o.Name, err = rec.OptString("name"); err != nil {
		return nil, err
	}
	if _, ok := rec["dst_path"]; ok {
		o.hasDstPath = true
		if o.DstPath, err = rec.TakeString("dst_path"); err != nil {
			return nil, err
		}
	}
	if _, ok := rec["dst_subfolder_spec"]; ok {
		o.hasDstSpec = true
		if o.DstSubfolderSpec, err = rec.TakeNumber("dst_subfolder_spec"); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *CopyFilesBuildPhase) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXCopyFilesBuildPhase")
	o.putCommon(rec)
	putOptString(rec, "name", o.Name)
	if o.hasDstPath {
		rec.PutString("dst_path", o.DstPath)
	}
	if o.hasDstSpec {
		rec.PutNumber("dst_subfolder_spec", o.DstSubfolderSpec)
	}
	return rec
}

// ShellScriptBuildPhase runs a script during the build.
type ShellScriptBuildPhase struct {
	BuildPhase
	Name                string
	ShellPath           string
	ShellScript         string
	InputPaths          []string
	OutputPaths         []string
	InputFileListPaths  []string
	OutputFileListPaths []string
	ShowEnvVarsInLog    bool

	hasShowEnvVars bool
}

func newShellScriptBuildPhase(rec Record, _ Handle) (Object, error) {
	o := &ShellScriptBuildPhase{ShellPath: "/bin/sh"}
	o.kind = kind.PBXShellScriptBuildPhase
	o.BuildActionMask = defaultBuildActionMask
	o.rest = rec
	if err := o.consumeCommon(rec); err != nil {
		return nil, err
	}
	var err error
	if o.Name, err = rec.OptString("name"); err != nil {
		return nil, err
	}
	if sp, err := rec.OptString("shell_path"); err != nil {
		return nil, err
	} else if sp != "" {
		o.ShellPath = sp
	}
	if o.ShellScript, err = rec.OptString("shell_script"); err != nil {
		return nil, err
	}
	if o.InputPaths, err = rec.OptStrings("input_paths"); err != nil {
		return nil, err
	}
	if o.OutputPaths, err = rec.OptStrings("output_paths"); err != nil {
		return nil, err
	}
	if o.InputFileListPaths, err = rec.OptStrings("input_file_list_paths"); err != nil {
		return nil, err
	}
	if o.OutputFileListPaths, err = rec.OptStrings("output_file_list_paths"); err != nil {
		return nil, err
	}
	if _, ok := rec["show_env_vars_in_log"]; ok {
		o.hasShowEnvVars = true
		if o.ShowEnvVarsInLog, err = rec.TakeFlag("show_env_vars_in_log"); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *ShellScriptBuildPhase) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXShellScriptBuildPhase")
	o.putCommon(rec)
	putOptString(rec, "name", o.Name)
	rec.PutString("shell_path", o.ShellPath)
	putOptString(rec, "shell_script", o.ShellScript)
	if o.InputPaths != nil {
		rec.PutStrings("input_paths", o.InputPaths)
	}
	if o.OutputPaths != nil {
		rec.PutStrings("output_paths", o.OutputPaths)
	}
	if o.InputFileListPaths != nil {
		rec.PutStrings("input_file_list_paths", o.InputFileListPaths)
	}
	if o.OutputFileListPaths != nil {
		rec.PutStrings("output_file_list_paths", o.OutputFileListPaths)
	}
	if o.hasShowEnvVars {
		rec.PutFlag("show_env_vars_in_log", o.ShowEnvVarsInLog)
	}
	return rec
}
