// Package yaml loads rule descriptor lists from YAML documents.
//
// A rule file is either a bare sequence of descriptors or a mapping with a
// "rules" key:
//
//	rules:
//	  - {rule: tagWithAttribute, tag: a, attr: rel}
//	  - {rule: tagLimitCount, tag: h1, count: 1}
//	  - {rule: childTagWithAttribute, parent: head, tag: meta, attr: name, value: keywords}
//
// Loading does not validate descriptors; malformed descriptors are reported
// when they are dispatched.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/htmlcheck"
	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Rules []*htmlcheck.Descriptor `yaml:"rules"`
}

// Load decodes a rule list from r.
// Returns EINVALID if the document is not a rule list.
func Load(r io.Reader) ([]*htmlcheck.Descriptor, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "failed to parse rules: %v", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var rules []*htmlcheck.Descriptor
		if err := node.Decode(&rules); err != nil {
			return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "failed to decode rules: %v", err)
		}
		return rules, nil
	case yaml.MappingNode:
		var f ruleFile
		if err := node.Decode(&f); err != nil {
			return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "failed to decode rules: %v", err)
		}
		return f.Rules, nil
	default:
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "rules must be a list or a mapping with a rules key")
	}
}

// LoadFile decodes a rule list from the file at path.
func LoadFile(path string) ([]*htmlcheck.Descriptor, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, htmlcheck.Errorf(htmlcheck.ENOTFOUND, "rules file %q not found: %w", path, err)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
