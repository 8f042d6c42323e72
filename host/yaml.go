package host

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

// DecodeYAML decodes YAML document into host value, mappings become *Object
// with document key order
func DecodeYAML(data []byte) (interface{}, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}
	return fromNode(&node)
}

func fromNode(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromNode(node.Content[0])
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.SequenceNode:
		values := make([]interface{}, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return values, nil
	case yaml.MappingNode:
		object := NewObject()
		if err := mergeMapping(object, node); err != nil {
			return nil, err
		}
		return object, nil
	case yaml.ScalarNode:
		var value interface{}
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %v: %w", node.Line, err)
		}
		return value, nil
	}
	return nil, fmt.Errorf("line %v: unsupported yaml node kind %v", node.Line, node.Kind)
}

func mergeMapping(object *Object, node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind == yaml.AliasNode {
			keyNode = keyNode.Alias
		}
		if keyNode.Tag == mergeTag {
			if err := mergeInto(object, valueNode); err != nil {
				return err
			}
			continue
		}
		value, err := fromNode(valueNode)
		if err != nil {
			return err
		}
		object.Set(keyNode.Value, value)
	}
	return nil
}

// mergeInto fills keys missing in object, explicit keys and earlier merge sources take precedence
func mergeInto(object *Object, node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		source := NewObject()
		if err := mergeMapping(source, node); err != nil {
			return err
		}
		for _, field := range source.Fields() {
			if _, ok := object.Get(field.Key); !ok {
				object.Set(field.Key, field.Value)
			}
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind == yaml.AliasNode {
				item = item.Alias
			}
			if item.Kind != yaml.MappingNode {
				return fmt.Errorf("line %v: merge value is not a mapping", item.Line)
			}
			if err := mergeInto(object, item); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("line %v: merge value is not a mapping", node.Line)
}
