// Package hierarchy models the addressable elements of a remote workspace:
// workspaces and the items inside them. Paths use the "name.Type" segment
// grammar, e.g. "ws1.Workspace/nb1.Notebook".
package hierarchy

import (
	"fmt"
	"strings"
)

// Element is any addressable node in the workspace tree.
type Element interface {
	Name() string
	Type() string
	Path() string
}

// SingleItem is the capability required by the Direct API import flow:
// a target that is one concrete item inside one workspace. Workspaces do
// not satisfy it.
type SingleItem interface {
	Element
	WorkspaceName() string
	ItemType() string
}

// Workspace is a container of items.
type Workspace struct {
	name string
}

func NewWorkspace(name string) *Workspace {
	return &Workspace{name: name}
}

func (w *Workspace) Name() string { return w.name }
func (w *Workspace) Type() string { return "Workspace" }
func (w *Workspace) Path() string { return w.name + ".Workspace" }

// Item is a single workspace item, such as a notebook or report.
type Item struct {
	workspace *Workspace
	name      string
	itemType  string
}

func NewItem(ws *Workspace, name, itemType string) *Item {
	return &Item{workspace: ws, name: name, itemType: itemType}
}

func (i *Item) Name() string          { return i.name }
func (i *Item) Type() string          { return i.itemType }
func (i *Item) WorkspaceName() string { return i.workspace.Name() }
func (i *Item) ItemType() string      { return i.itemType }

func (i *Item) Path() string {
	return i.workspace.Path() + "/" + i.name + "." + i.itemType
}

// ParsePath resolves an element path of one or two "name.Type" segments.
// The first segment must be a workspace; the second, when present, is an
// item inside it. Deeper paths are not addressable import targets.
func ParsePath(path string) (Element, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("empty element path")
	}

	segments := strings.Split(trimmed, "/")
	if len(segments) > 2 {
		return nil, fmt.Errorf("path %q is too deep: expected <workspace>[/<item>]", path)
	}

	wsName, wsType, err := splitSegment(segments[0])
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	if !strings.EqualFold(wsType, "Workspace") {
		return nil, fmt.Errorf("path %q must start with a workspace, got type %q", path, wsType)
	}
	ws := NewWorkspace(wsName)

	if len(segments) == 1 {
		return ws, nil
	}

	itemName, itemType, err := splitSegment(segments[1])
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	if strings.EqualFold(itemType, "Workspace") {
		return nil, fmt.Errorf("path %q nests a workspace inside a workspace", path)
	}

	return NewItem(ws, itemName, itemType), nil
}

// splitSegment separates "name.Type" on the last dot, so item names may
// themselves contain dots.
func splitSegment(segment string) (name, elemType string, err error) {
	segment = strings.TrimSpace(segment)
	idx := strings.LastIndex(segment, ".")
	if idx <= 0 || idx == len(segment)-1 {
		return "", "", fmt.Errorf("segment %q is not of the form <name>.<Type>", segment)
	}
	return segment[:idx], segment[idx+1:], nil
}
