// Package xmlnav provides namespace-aware path queries over ISO19139/CHE
// metadata records. It wraps github.com/masterzen/xmlpath with the gmd/che
// namespace table and normalizes every extracted string, so callers work
// with plain path strings and get back either a value or an explicit empty
// sentinel.
//
// Path strings use the xmlpath subset. Queries scoped to a sub-node must
// start with ".//": a bare leading "//" climbs back to the document root
// before matching.
package xmlnav

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	xmlpath "github.com/masterzen/xmlpath"
)

// Node is a position in a parsed metadata record.
type Node = xmlpath.Node

// Namespaces used by geocat.ch CSW records: ISO19139 (gmd/gco/gmx/srv/gml)
// plus the Swiss national profile (che).
var namespaces = []xmlpath.Namespace{
	{Prefix: "atom", Uri: "http://www.w3.org/2005/Atom"},
	{Prefix: "che", Uri: "http://www.geocat.ch/2008/che"},
	{Prefix: "csw", Uri: "http://www.opengis.net/cat/csw/2.0.2"},
	{Prefix: "dc", Uri: "http://purl.org/dc/elements/1.1/"},
	{Prefix: "dct", Uri: "http://purl.org/dc/terms/"},
	{Prefix: "gco", Uri: "http://www.isotc211.org/2005/gco"},
	{Prefix: "gmd", Uri: "http://www.isotc211.org/2005/gmd"},
	{Prefix: "gmx", Uri: "http://www.isotc211.org/2005/gmx"},
	{Prefix: "gml", Uri: "http://www.opengis.net/gml"},
	{Prefix: "ogc", Uri: "http://www.opengis.net/ogc"},
	{Prefix: "ows", Uri: "http://www.opengis.net/ows"},
	{Prefix: "rdf", Uri: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	{Prefix: "srv", Uri: "http://www.isotc211.org/2005/srv"},
	{Prefix: "xlink", Uri: "http://www.w3.org/1999/xlink"},
}

// MetadataFormatError reports a record that could not be parsed as XML.
// It is the only fatal error in the crosswalk: everything else degrades to
// typed empty values.
type MetadataFormatError struct {
	Err error
}

func (e *MetadataFormatError) Error() string {
	return fmt.Sprintf("could not parse XML: %v", e.Err)
}

func (e *MetadataFormatError) Unwrap() error { return e.Err }

// Parse reads one metadata record. A malformed document yields a
// *MetadataFormatError.
func Parse(raw []byte) (*Node, error) {
	if err := checkWellFormed(raw); err != nil {
		return nil, &MetadataFormatError{Err: err}
	}
	root, err := xmlpath.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, &MetadataFormatError{Err: err}
	}
	return root, nil
}

// checkWellFormed rejects input that is not a well-formed XML document with
// a root element. The underlying parser accepts bare character data, which
// would let arbitrary junk through as an empty record.
func checkWellFormed(raw []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	seenElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, ok := tok.(xml.StartElement); ok {
			seenElement = true
		}
	}
	if !seenElement {
		return errors.New("no root element")
	}
	return nil
}

var (
	pathMu    sync.RWMutex
	pathCache = map[string]*xmlpath.Path{}
)

// compile returns a compiled path, caching compilations for the process
// lifetime. Path strings are fixed at build time, so a bad path is a
// programming error and panics, matching xmlpath.MustCompile.
func compile(path string) *xmlpath.Path {
	pathMu.RLock()
	p, ok := pathCache[path]
	pathMu.RUnlock()
	if ok {
		return p
	}
	compiled, err := xmlpath.CompileWithNamespace(path, namespaces)
	if err != nil {
		panic(fmt.Sprintf("xmlnav: bad path %q: %v", path, err))
	}
	pathMu.Lock()
	pathCache[path] = compiled
	pathMu.Unlock()
	return compiled
}

// SingleValue returns the normalized string value of the first match for a
// path, or "" when nothing matches.
func SingleValue(node *Node, path string) string {
	if value, ok := compile(path).String(node); ok {
		return CleanString(value)
	}
	return ""
}

// SingleNode returns the first matching node, or nil.
func SingleNode(node *Node, path string) *Node {
	iter := compile(path).Iter(node)
	if iter.Next() {
		return iter.Node()
	}
	return nil
}

// AllNodes returns every match for a path, or an empty slice.
func AllNodes(node *Node, path string) []*Node {
	var nodes []*Node
	iter := compile(path).Iter(node)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}

// AllValues returns the normalized string values of every match for a path,
// dropping values that normalize to "".
func AllValues(node *Node, path string) []string {
	var values []string
	for _, n := range AllNodes(node, path) {
		if v := CleanString(n.String()); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Exists reports whether a path matches at all.
func Exists(node *Node, path string) bool {
	return compile(path).Exists(node)
}

// FirstOfPaths tries paths in order and returns the first non-empty string
// value together with the index of the path that matched. Callers use the
// index to derive sibling values relative to the matched path. Returns
// ("", -1) when no path yields a value.
func FirstOfPaths(node *Node, paths []string) (string, int) {
	for i, path := range paths {
		if value := SingleValue(node, path); value != "" {
			return value, i
		}
	}
	return "", -1
}

// FirstNodeOfPaths tries paths in order and returns the first matching node
// together with the index of the path that matched, or (nil, -1).
func FirstNodeOfPaths(node *Node, paths []string) (*Node, int) {
	for i, path := range paths {
		if n := SingleNode(node, path); n != nil {
			return n, i
		}
	}
	return nil, -1
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// CleanString collapses whitespace runs to single spaces and trims the ends.
// Source records freely mix newlines and indentation into text values.
func CleanString(value string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(value, " "))
}
