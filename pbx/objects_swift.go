package pbx

import (
	"strings"

	"github.com/pbx-format/go-pbx/kind"
)

// VersionRequirement is the version rule of a remote swift package
// reference, e.g. {kind = upToNextMajorVersion; minimumVersion = 1.0.0;}.
type VersionRequirement struct {
	Kind           string
	MinimumVersion string
	MaximumVersion string
	Version        string
	Revision       string
	Branch         string

	rest Record
}

func newVersionRequirement(rec Record) (*VersionRequirement, error) {
	v := &VersionRequirement{rest: rec}
	var err error
	if v.Kind, err = rec.TakeString("kind"); err != nil {
		return nil, err
	}
	if v.MinimumVersion, err = rec.OptString("minimum_version"); err != nil {
		return nil, err
	}
	if v.MaximumVersion, err = rec.OptString("maximum_version"); err != nil {
		return nil, err
	}
	if v.Version, err = rec.OptString("version"); err != nil {
		return nil, err
	}
	if v.Revision, err = rec.OptString("revision"); err != nil {
		return nil, err
	}
	if v.Branch, err = rec.OptString("branch"); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *VersionRequirement) toRecord() Record {
	rec := v.rest.Clone()
	rec.PutString("kind", v.Kind)
	putOptString(rec, "minimum_version", v.MinimumVersion)
	putOptString(rec, "maximum_version", v.MaximumVersion)
	putOptString(rec, "version", v.Version)
	putOptString(rec, "revision", v.Revision)
	putOptString(rec, "branch", v.Branch)
	return rec
}

// RemoteSwiftPackageReference points to a package fetched from a
// repository URL.
type RemoteSwiftPackageReference struct {
	RepositoryURL string
	Requirement   *VersionRequirement

	objects Handle
	rest    Record
}

func newRemoteSwiftPackageReference(rec Record, h Handle) (Object, error) {
	o := &RemoteSwiftPackageReference{objects: h, rest: rec}
	var err error
	if o.RepositoryURL, err = rec.OptString("repository_url"); err != nil {
		return nil, err
	}
	req, err := rec.OptRecord("requirement")
	if err != nil {
		return nil, err
	}
	if req != nil {
		if o.Requirement, err = newVersionRequirement(req); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *RemoteSwiftPackageReference) Kind() kind.Kind {
	return kind.XCRemoteSwiftPackageReference
}

// Name derives the package name from the last path component of the
// repository URL. Empty when no URL is set.
func (o *RemoteSwiftPackageReference) Name() string {
	if o.RepositoryURL == "" {
		return ""
	}
	parts := strings.Split(o.RepositoryURL, "/")
	name := parts[len(parts)-1]
	return strings.TrimSuffix(name, ".git")
}

func (o *RemoteSwiftPackageReference) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("XCRemoteSwiftPackageReference")
	putOptString(rec, "repository_url", o.RepositoryURL)
	if o.Requirement != nil {
		rec.PutNode("requirement", o.Requirement.toRecord().ToNode())
	}
	return rec
}

// LocalSwiftPackageReference points to a package in the working tree.
type LocalSwiftPackageReference struct {
	RelativePath string

	rest Record
}

func newLocalSwiftPackageReference(rec Record, _ Handle) (Object, error) {
	o := &LocalSwiftPackageReference{rest: rec}
	var err error
	if o.RelativePath, err = rec.OptString("relative_path"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *LocalSwiftPackageReference) Kind() kind.Kind {
	return kind.XCLocalSwiftPackageReference
}

func (o *LocalSwiftPackageReference) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("XCLocalSwiftPackageReference")
	putOptString(rec, "relative_path", o.RelativePath)
	return rec
}

// SwiftPackageProductDependency names a product of a package
// reference consumed by a target.
type SwiftPackageProductDependency struct {
	ProductName string
	PackageRef  string

	objects Handle
	rest    Record
}

func newSwiftPackageProductDependency(rec Record, h Handle) (Object, error) {
	o := &SwiftPackageProductDependency{objects: h, rest: rec}
	var err error
	if o.ProductName, err = rec.OptString("product_name"); err != nil {
		return nil, err
	}
	if o.PackageRef, err = rec.OptString("package"); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *SwiftPackageProductDependency) Kind() kind.Kind {
	return kind.XCSwiftPackageProductDependency
}

// Package resolves the referenced remote package, if any.
func (o *SwiftPackageProductDependency) Package() (*RemoteSwiftPackageReference, bool) {
	obj, ok := o.objects.Get(o.PackageRef)
	if !ok {
		return nil, false
	}
	p, ok := obj.(*RemoteSwiftPackageReference)
	return p, ok
}

func (o *SwiftPackageProductDependency) ToRecord() Record {
	rec := o.rest.Clone()
	rec["isa"] = kindNode("XCSwiftPackageProductDependency")
	putOptString(rec, "product_name", o.ProductName)
	putOptString(rec, "package", o.PackageRef)
	return rec
}
