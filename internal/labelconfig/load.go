package labelconfig

import "lsconfig/internal/common"

// LoadTask returns a copy of c whose variable objects carry the matching
// values of data. c itself is unchanged.
func (c *LabelingConfig) LoadTask(data map[string]any) *LabelingConfig {
	out := c.clone()

	for _, obj := range out.objects {
		if !obj.ValueIsVariable {
			continue
		}

		if v, ok := data[obj.ValueName]; ok {
			obj.Data = common.CloneValue(v)
		}
	}

	return out
}
