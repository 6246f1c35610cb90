package pbx

import (
	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/kind"
)

func kindNode(tag string) *ir.Node {
	return ir.FromKind(tag)
}

func putOptString(rec Record, key, v string) {
	if v != "" {
		rec.PutString(key, v)
	}
}

// BuildFile ties a file or package product reference into a build
// phase.
type BuildFile struct {
	FileRef    string
	ProductRef string
	Settings   *ir.Node

	rest Record
}

func newBuildFile(rec Record, _ Handle) (Object, error) {
	o := &BuildFile{rest: rec}
	var err error
	if o.FileRef, err = rec.OptString("file_ref"); err != nil {
		return nil, err
	}
	if o.ProductRef, err = rec.OptString("product_ref"); err != nil {
		return nil, err
	}
	if o.Settings, err = rec.OptObject("settings"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *BuildFile) Kind() kind.Kind { return kind.PBXBuildFile }

// File resolves the referenced file, if any.
func (o *BuildFile) File(h Handle) (*FileReference, bool) {
	obj, ok := h.Get(o.FileRef)
	if !ok {
		return nil, false
	}
	f, ok := obj.(*FileReference)
	return f, ok
}

func (o *BuildFile) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXBuildFile")
	putOptString(rec, "file_ref", o.FileRef)
	putOptString(rec, "product_ref", o.ProductRef)
	rec.PutNode("settings", o.Settings)
	return rec
}

// FileReference is an on-disk file or directory appearing in the
// project tree.
type FileReference struct {
	Path              string
	Name              string
	SourceTree        string
	LastKnownFileType string
	ExplicitFileType  string
	FileEncoding      int64
	IncludeInIndex    bool

	hasEncoding bool
	hasIndex    bool
	rest        Record
}

func newFileReference(rec Record, _ Handle) (Object, error) {
	o := &FileReference{rest: rec}
	var err error
	if o.Path, err = rec.OptString("path"); err != nil {
		return nil, err
	}
	if o.Name, err = rec.OptString("name"); err != nil {
		return nil, err
	}
	if o.SourceTree, err = rec.OptString("source_tree"); err != nil {
		return nil, err
	}
	if o.LastKnownFileType, err = rec.OptString("last_known_file_type"); err != nil {
		return nil, err
	}
	if o.ExplicitFileType, err = rec.OptString("explicit_file_type"); err != nil {
		return nil, err
	}
	if _, ok := rec["file_encoding"]; ok {
		o.hasEncoding = true
		if o.FileEncoding, err = rec.TakeNumber("file_encoding"); err != nil {
			return nil, err
		}
	}
	if _, ok := rec["include_in_index"]; ok {
		o.hasIndex = true
		if o.IncludeInIndex, err = rec.TakeFlag("include_in_index"); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *FileReference) Kind() kind.Kind { return kind.PBXFileReference }

// DisplayName is the name when set, otherwise the path.
func (o *FileReference) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	return o.Path
}

func (o *FileReference) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXFileReference")
	putOptString(rec, "path", o.Path)
	putOptString(rec, "name", o.Name)
	putOptString(rec, "source_tree", o.SourceTree)
	putOptString(rec, "last_known_file_type", o.LastKnownFileType)
	putOptString(rec, "explicit_file_type", o.ExplicitFileType)
	if o.hasEncoding {
		rec.PutNumber("file_encoding", o.FileEncoding)
	}
	if o.hasIndex {
		rec.PutFlag("include_in_index", o.IncludeInIndex)
	}
	return rec
}

// Group is a folder node in the project tree. The same shape backs
// PBXGroup, PBXVariantGroup and XCVersionGroup.
type Group struct {
	ChildrenRefs []string
	Name         string
	Path         string
	SourceTree   string

	kind kind.Kind
	rest Record
}

func newGroup(k kind.Kind) constructor {
	return func(rec Record, _ Handle) (Object, error) {
		o := &Group{kind: k, rest: rec}
		var err error
		if o.ChildrenRefs, err = rec.OptStrings("children"); err != nil {
			return nil, err
		}
		if o.Name, err = rec.OptString("name"); err != nil {
			return nil, err
		}
		if o.Path, err = rec.OptString("path"); err != nil {
			return nil, err
		}
		if o.SourceTree, err = rec.OptString("source_tree"); err != nil {
			return nil, err
		}
		return o, nil
	}
}

func (o *Group) Kind() kind.Kind { return o.kind }

// Children resolves the member references, silently skipping dangling
// ids: hand-edited project files routinely contain stale references.
func (o *Group) Children(h Handle) []Object {
	res := make([]Object, 0, len(o.ChildrenRefs))
	for _, id := range o.ChildrenRefs {
		if c, ok := h.Get(id); ok {
			res = append(res, c)
		}
	}
	return res
}

func (o *Group) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode(o.kind.Tag())
	rec.PutStrings("children", o.ChildrenRefs)
	putOptString(rec, "name", o.Name)
	putOptString(rec, "path", o.Path)
	putOptString(rec, "source_tree", o.SourceTree)
	return rec
}

// ReferenceProxy stands in for a product of another project referenced
// through a container item proxy.
type ReferenceProxy struct {
	FileType   string
	Path       string
	RemoteRef  string
	SourceTree string

	rest Record
}

func newReferenceProxy(rec Record, _ Handle) (Object, error) {
	o := &ReferenceProxy{rest: rec}
	var err error
	if o.FileType, err = rec.OptString("file_type"); err != nil {
		return nil, err
	}
	if o.Path, err = rec.OptString("path"); err != nil {
		return nil, err
	}
	if o.RemoteRef, err = rec.OptString("remote_ref"); err != nil {
		return nil, err
	}
	if o.SourceTree, err = rec.OptString("source_tree"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *ReferenceProxy) Kind() kind.Kind { return kind.PBXReferenceProxy }

func (o *ReferenceProxy) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("PBXReferenceProxy")
	putOptString(rec, "file_type", o.FileType)
	putOptString(rec, "path", o.Path)
	putOptString(rec, "remote_ref", o.RemoteRef)
	putOptString(rec, "source_tree", o.SourceTree)
	return rec
}
