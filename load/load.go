// Package load 设计文件加载
// 设计文件为 YAML 格式，缺省字段取参考设计值，未知字段视为错误
package load

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"aspmsm/types"
)

// LoadString 从字符串加载设计参数。
func LoadString(s string) (types.MotorSpec, error) {
	return Load(strings.NewReader(s))
}

// LoadFile 从设计文件加载设计参数。
func LoadFile(path string) (types.MotorSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.MotorSpec{}, fmt.Errorf("打开设计文件失败: %w", err)
	}
	defer f.Close()
	spec, err := Load(f)
	if err != nil {
		return types.MotorSpec{}, fmt.Errorf("设计文件 %s: %w", path, err)
	}
	return spec, nil
}

// Load 加载设计参数并校验
// 文件中出现的字段覆盖参考设计值，拼写错误的字段名直接报错
func Load(r io.Reader) (types.MotorSpec, error) {
	spec := types.DefaultSpec()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if err == io.EOF {
			// 空文件即参考设计
			return spec, nil
		}
		return types.MotorSpec{}, fmt.Errorf("解析设计文件失败: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return types.MotorSpec{}, err
	}
	return spec, nil
}

// Save 将设计参数写为 YAML 设计文件。
func Save(w io.Writer, spec types.MotorSpec) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("写设计文件失败: %w", err)
	}
	return nil
}
