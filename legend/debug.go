package legend

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将图例计算结果输出为 JSON，便于调试键位与文本坐标。
func WriteDebugJSON(sheet *Sheet, path string) error {
	if sheet == nil {
		return nil
	}
	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
