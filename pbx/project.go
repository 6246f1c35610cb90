package pbx

import (
	"os"
	"slices"

	"github.com/pbx-format/go-pbx/debug"
	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/parse"
)

// Project is a parsed pbxproj document: the versions, the class table,
// the root object reference, and the object graph. Construction is
// all-or-nothing; a Project is plain data once built.
type Project struct {
	ArchiveVersion int64
	ObjectVersion  int64
	Classes        map[string]*ir.Node
	RootObjectRef  string
	Objects        *Graph
}

// Parse constructs a Project from pbxproj text.
func Parse(d []byte) (*Project, error) {
	root, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	rec := NewRecord(root)
	p := &Project{Classes: map[string]*ir.Node{}}
	if p.ArchiveVersion, err = rec.TakeNumber("archive_version"); err != nil {
		return nil, err
	}
	if p.ObjectVersion, err = rec.TakeNumber("object_version"); err != nil {
		return nil, err
	}
	classes, err := rec.OptObject("classes")
	if err != nil {
		return nil, err
	}
	if classes != nil {
		p.Classes = ir.ToMap(classes)
	}
	if p.RootObjectRef, err = rec.TakeString("root_object"); err != nil {
		return nil, err
	}
	objs, err := rec.TakeObject("objects")
	if err != nil {
		return nil, err
	}
	p.Objects = NewGraph()
	h := p.Objects.Weak()
	for i := range objs.Fields {
		id := objs.Fields[i].String
		val := objs.Values[i]
		if val.Type != ir.ObjectType {
			return nil, &TypeMismatch{Key: id, Want: ir.ObjectType, Got: val.Type}
		}
		obj, err := FromRecord(NewRecord(val), h)
		if err != nil {
			return nil, err
		}
		p.Objects.Insert(id, obj)
	}
	if debug.Graph() {
		debug.Dump("parsed graph", p.Objects.Len())
	}
	return p, nil
}

// ParseFile reads path and parses it. Byte reading is delegated to the
// OS; everything else is Parse.
func ParseFile(path string) (*Project, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d)
}

// Root resolves the root object reference to its PBXProject entry.
func (p *Project) Root() (*ProjectObject, bool) {
	obj, ok := p.Objects.Get(p.RootObjectRef)
	if !ok {
		return nil, false
	}
	root, ok := obj.(*ProjectObject)
	return root, ok
}

// ToNode renders the whole document back to a generic value tree with
// external key spellings, ready for the encoder.
func (p *Project) ToNode() *ir.Node {
	objKVs := []ir.KeyVal{}
	p.Objects.Each(func(id string, o Object) bool {
		objKVs = append(objKVs, ir.KeyVal{Key: id, Val: o.ToRecord().ToNode()})
		return true
	})
	classKVs := make([]ir.KeyVal, 0, len(p.Classes))
	classKeys := make([]string, 0, len(p.Classes))
	for k := range p.Classes {
		classKeys = append(classKeys, k)
	}
	slices.Sort(classKeys)
	for _, k := range classKeys {
		classKVs = append(classKVs, ir.KeyVal{Key: k, Val: p.Classes[k]})
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "archiveVersion", Val: ir.FromInt(p.ArchiveVersion)},
		{Key: "classes", Val: ir.FromKeyVals(classKVs)},
		{Key: "objectVersion", Val: ir.FromInt(p.ObjectVersion)},
		{Key: "objects", Val: ir.FromKeyVals(objKVs)},
		{Key: "rootObject", Val: ir.FromString(p.RootObjectRef)},
	})
}
