// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

// BlockType is the closed set of workflow block kinds.
//
// vote0007 is the target system's approval block; the odd name is the
// upstream block type identifier and is carried verbatim.
type BlockType string

const (
	BlockStart        BlockType = "start"
	BlockStop         BlockType = "stop"
	BlockUpdate       BlockType = "update"
	BlockVote         BlockType = "vote0007"
	BlockTask         BlockType = "task"
	BlockNotification BlockType = "notification"
	BlockQuickAction  BlockType = "quickaction"
	BlockIf           BlockType = "if"
	BlockSwitch       BlockType = "switch"
	BlockJoin         BlockType = "join"

	// BlockTypeUnknown is the fallback variant for values outside the
	// closed set. It always fails validation.
	BlockTypeUnknown BlockType = ""
)

var blockTypes = map[string]BlockType{
	"start":        BlockStart,
	"stop":         BlockStop,
	"update":       BlockUpdate,
	"vote0007":     BlockVote,
	"task":         BlockTask,
	"notification": BlockNotification,
	"quickaction":  BlockQuickAction,
	"if":           BlockIf,
	"switch":       BlockSwitch,
	"join":         BlockJoin,
}

// ParseBlockType maps a raw string onto the closed block type set.
// Matching is exact, same as ParseFieldType: a block typed "Start"
// is an unknown block, not a start block. Unknown values map to
// BlockTypeUnknown rather than erroring.
func ParseBlockType(s string) BlockType {
	if t, ok := blockTypes[s]; ok {
		return t
	}
	return BlockTypeUnknown
}

// WorkflowLink is a directed edge between two blocks, labeled by the
// originating block's exit name.
type WorkflowLink struct {
	From string `json:"from"`
	Exit string `json:"exit"`
	To   string `json:"to"`
}
