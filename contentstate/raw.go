package contentstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrRawParse indicates the input is not valid raw ContentState JSON.
var ErrRawParse = errors.New("invalid raw ContentState")

// Raw ContentState wire types. Offsets and lengths are interpreted as rune
// offsets into the block text; out-of-range portions of a range are clamped
// rather than rejected.
type rawContent struct {
	Blocks    []rawBlock           `json:"blocks"`
	EntityMap map[string]rawEntity `json:"entityMap"`
}

type rawBlock struct {
	Key               string           `json:"key"`
	Text              string           `json:"text"`
	Type              string           `json:"type"`
	Depth             int              `json:"depth"`
	InlineStyleRanges []rawStyleRange  `json:"inlineStyleRanges"`
	EntityRanges      []rawEntityRange `json:"entityRanges"`
	Data              map[string]any   `json:"data"`
}

type rawStyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

type rawEntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

type rawEntity struct {
	Type       string         `json:"type"`
	Mutability string         `json:"mutability"`
	Data       map[string]any `json:"data"`
}

// FromRaw decodes Draft.js raw ContentState JSON into a ContentState. The
// per-character overlay described by inlineStyleRanges and entityRanges is
// flattened into maximal contiguous style runs, so blocks coming out of here
// already satisfy the exporter's pre-merged run invariant.
func FromRaw(data []byte) (*ContentState, error) {
	var raw rawContent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRawParse, err)
	}

	blocks := make([]Block, 0, len(raw.Blocks))
	for _, rb := range raw.Blocks {
		blocks = append(blocks, rb.toBlock())
	}

	entities := make(map[string]Entity, len(raw.EntityMap))
	for key, re := range raw.EntityMap {
		entities[key] = Entity{
			Type: EntityType(re.Type),
			Data: coerceData(re.Data),
		}
	}

	return New(blocks, entities), nil
}

func (rb rawBlock) toBlock() Block {
	runes := []rune(rb.Text)
	styles := make([]StyleSet, len(runes))
	entityKeys := make([]string, len(runes))

	for _, sr := range rb.InlineStyleRanges {
		from, to := clampRange(sr.Offset, sr.Length, len(runes))
		for i := from; i < to; i++ {
			styles[i] = styles[i].Add(Style(sr.Style))
		}
	}
	for _, er := range rb.EntityRanges {
		from, to := clampRange(er.Offset, er.Length, len(runes))
		key := strconv.Itoa(er.Key)
		for i := from; i < to; i++ {
			entityKeys[i] = key
		}
	}

	runs := make([]StyleRun, len(runes))
	for i := range runes {
		runs[i] = StyleRun{Length: 1, Styles: styles[i], EntityKey: entityKeys[i]}
	}

	return Block{
		Key:   rb.Key,
		Type:  BlockType(rb.Type),
		Depth: rb.Depth,
		Text:  rb.Text,
		Runs:  MergeStyleRuns(runs),
		Data:  coerceData(rb.Data),
	}
}

func clampRange(offset, length, max int) (from, to int) {
	from = offset
	if from < 0 {
		from = 0
	}
	to = offset + length
	if to > max {
		to = max
	}
	if from > to {
		from = to
	}
	return from, to
}

// coerceData keeps the string-valued fields of a raw data object and renders
// scalar numbers and booleans as strings. Null and structured values are
// dropped: absent data contributes nothing downstream.
func coerceData(data map[string]any) map[string]string {
	if len(data) == 0 {
		return nil
	}
	out := make(map[string]string, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
