package cfgm

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/SirIleBo/elasticsearch/pkg/templexp"
)

func configTagName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType
}

// structToMap 将配置结构体转为以 json tag 为 key 的嵌套 map。
func structToMap(cfg any) map[string]any {
	val := reflect.ValueOf(cfg)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return map[string]any{}
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return map[string]any{}
	}

	out := make(map[string]any)
	typ := val.Type()
	for i := range typ.NumField() {
		sf := typ.Field(i)
		key := configTagName(sf)
		if sf.PkgPath != "" || key == "" {
			continue
		}
		out[key] = valueToAny(val.Field(i))
	}

	return out
}

func valueToAny(val reflect.Value) any {
	if isStructType(val.Type()) {
		return structToMap(val.Interface())
	}

	switch val.Kind() {
	case reflect.Slice:
		if val.IsNil() {
			return nil
		}
		out := make([]any, val.Len())
		for i := range val.Len() {
			out[i] = valueToAny(val.Index(i))
		}

		return out
	case reflect.Map:
		if val.IsNil() {
			return nil
		}
		out := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out[fmt.Sprintf("%v", iter.Key().Interface())] = valueToAny(iter.Value())
		}

		return out
	case reflect.Pointer:
		if val.IsNil() {
			return nil
		}

		return valueToAny(val.Elem())
	default:
		return val.Interface()
	}
}

// parseConfigBytes 按扩展名选择解析器：.json → JSON，.toml → TOML，其余按 YAML。
func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(content, &raw)
	case ".toml":
		err = toml.Unmarshal(content, &raw)
	default:
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)

				continue
			}
		}

		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

func envMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}

// expandStrings 对 map 中的字符串值执行 Shell 参数展开，skip 中的 key 及其子树跳过。
func expandStrings(data map[string]any, prefix string, skip map[string]bool, environ []string) error {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if skip[fullKey] {
			continue
		}

		expanded, err := expandValue(value, fullKey, skip, environ)
		if err != nil {
			return fmt.Errorf("expand %s: %w", fullKey, err)
		}
		data[key] = expanded
	}

	return nil
}

func expandValue(value any, key string, skip map[string]bool, environ []string) (any, error) {
	switch typed := value.(type) {
	case string:
		return templexp.ExpandEnv(typed, environ)
	case []string:
		out := make([]string, len(typed))
		for i, s := range typed {
			expanded, err := templexp.ExpandEnv(s, environ)
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}

		return out, nil
	case []any:
		for i := range typed {
			expanded, err := expandValue(typed[i], key, skip, environ)
			if err != nil {
				return nil, err
			}
			typed[i] = expanded
		}

		return typed, nil
	case map[string]any:
		return typed, expandStrings(typed, key, skip, environ)
	default:
		return value, nil
	}
}

func decodeConfigMap(data map[string]any, out any) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
