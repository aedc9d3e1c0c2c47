// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validate

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/CatalogForge/services/translator/datatypes"
)

// visitState tracks DFS progress per block during the reachability pass.
type visitState int

const (
	unvisited visitState = iota
	inProgress
	done
)

// Workflow checks the block/link graph document.
//
// The checks run in a fixed order and none short-circuits the others:
// block id uniqueness, type membership, start/stop counts, vote0007
// approver shape, exit-title conformance, link endpoint existence,
// dead-end detection, status-transition shape, pending notification
// placeholders, and finally the reachability/cycle pass.
//
// The reachability pass is a depth-first traversal from the unique start
// block following links, with three states per block. Revisiting an
// in-progress block is a cycle (error naming the offending edge); blocks
// never reached are warned as unreachable; a traversal that never
// reaches a stop block is an error. The pass only runs when its
// prerequisites hold: unique, valid block ids and exactly one start.
func Workflow(workflow map[string]any) datatypes.IssueList {
	var issues datatypes.IssueList

	blocks, blocksOK := workflow["blocks"].([]any)
	links, linksOK := workflow["links"].([]any)
	if !blocksOK || !linksOK {
		issues.Errorf("workflow", "blocks and links must be lists")
		return issues
	}

	ids := make(map[string]bool, len(blocks))
	orderedIDs := make([]string, 0, len(blocks))
	blockType := make(map[string]datatypes.BlockType, len(blocks))
	blockIndex := make(map[string]int, len(blocks))
	idsUsable := true
	startID := ""
	startCount, stopCount := 0, 0

	for i, raw := range blocks {
		where := fmt.Sprintf("workflow.blocks[%d]", i+1)
		block, ok := raw.(map[string]any)
		if !ok {
			issues.Errorf(where, "Missing/invalid id")
			idsUsable = false
			continue
		}
		id, ok := block["id"].(string)
		if !ok || id == "" {
			issues.Errorf(where, "Missing/invalid id")
			idsUsable = false
			continue
		}
		if ids[id] {
			issues.Errorf(where, "Duplicate block id: %s", id)
			idsUsable = false
		}
		ids[id] = true
		orderedIDs = append(orderedIDs, id)
		blockIndex[id] = i + 1

		btype := datatypes.ParseBlockType(getString(block, "type"))
		if btype == datatypes.BlockTypeUnknown || !tables.AllowedBlockTypes()[string(btype)] {
			issues.Errorf(where, "Unknown block type: %v", block["type"])
		}
		blockType[id] = btype
		switch btype {
		case datatypes.BlockStart:
			startCount++
			startID = id
		case datatypes.BlockStop:
			stopCount++
		}

		if btype == datatypes.BlockVote {
			checkApprovers(block, where, &issues)
		}
		checkExitTitles(block, btype, where, &issues)
	}

	if startCount != 1 {
		issues.Errorf("workflow.blocks", "Expected exactly one start block; found %d", startCount)
	}
	if stopCount < 1 {
		issues.Errorf("workflow.blocks", "Expected at least one stop block")
	}

	outgoing := make(map[string][]datatypes.WorkflowLink, len(blocks))
	for i, raw := range links {
		where := fmt.Sprintf("workflow.links[%d]", i+1)
		link, ok := raw.(map[string]any)
		if !ok {
			issues.Errorf(where, "Link must be an object")
			continue
		}
		from := getString(link, "from")
		to := getString(link, "to")
		if !ids[from] {
			issues.Errorf(where, "Unknown from id: %v", link["from"])
		}
		if !ids[to] {
			issues.Errorf(where, "Unknown to id: %v", link["to"])
		}
		if ids[from] && ids[to] {
			outgoing[from] = append(outgoing[from], datatypes.WorkflowLink{
				From: from,
				Exit: getString(link, "exit"),
				To:   to,
			})
		}
	}

	for _, id := range orderedIDs {
		if blockType[id] != datatypes.BlockStop && len(outgoing[id]) == 0 {
			issues.Warnf(fmt.Sprintf("workflow.blocks[%d]", blockIndex[id]),
				"Block '%s' has no outgoing links", id)
		}
	}

	checkStatusTransitions(workflow, &issues)
	checkNotifications(workflow, &issues)

	if idsUsable && startCount == 1 {
		checkReachability(startID, orderedIDs, blockType, blockIndex, outgoing, &issues)
	}

	return issues
}

// checkApprovers enforces the vote0007 properties.approvers shape:
// mode=group requires group_recid, mode=related_manager requires
// relation, anything else is flagged as unusual.
func checkApprovers(block map[string]any, where string, issues *datatypes.IssueList) {
	props, _ := block["properties"].(map[string]any)
	appr, _ := props["approvers"].(map[string]any)
	switch getString(appr, "mode") {
	case "group":
		if getString(appr, "group_recid") == "" {
			issues.Errorf(where, "vote0007 mode=group requires group_recid")
		}
	case "related_manager":
		if getString(appr, "relation") == "" {
			issues.Errorf(where, "vote0007 mode=related_manager requires relation")
		}
	default:
		issues.Warnf(where, "vote0007 approvers.mode is unusual")
	}
}

// checkExitTitles flags exit titles outside the allowed set for the
// block type, and required titles that are missing. Block types without
// an entry in the exit table are unconstrained.
func checkExitTitles(block map[string]any, btype datatypes.BlockType, where string, issues *datatypes.IssueList) {
	exitRules, constrained := tables.Workflow.Exits[string(btype)]
	if !constrained {
		return
	}
	allowed := make(map[string]bool, len(exitRules.Allowed))
	for _, title := range exitRules.Allowed {
		allowed[title] = true
	}

	seen := make(map[string]bool)
	exits, _ := block["exits"].([]any)
	for _, raw := range exits {
		exit, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		title := getString(exit, "title")
		seen[title] = true
		if !allowed[title] {
			issues.Warnf(where, "Unexpected exit '%s' on %s block", title, btype)
		}
	}
	for _, title := range exitRules.Required {
		if !seen[title] {
			issues.Warnf(where, "Missing expected exit '%s' on %s block", title, btype)
		}
	}
}

// checkStatusTransitions verifies status_transitions, if present, is a
// list whose entries each carry from, on and to.
func checkStatusTransitions(workflow map[string]any, issues *datatypes.IssueList) {
	raw, present := workflow["status_transitions"]
	if !present || raw == nil {
		return
	}
	transitions, ok := raw.([]any)
	if !ok {
		issues.Errorf("workflow.status_transitions", "Must be a list")
		return
	}
	for j, t := range transitions {
		entry, ok := t.(map[string]any)
		where := fmt.Sprintf("workflow.status_transitions[%d]", j+1)
		if !ok {
			issues.Errorf(where, "Must be an object")
			continue
		}
		for _, k := range []string{"from", "on", "to"} {
			if _, ok := entry[k]; !ok {
				issues.Errorf(where, "Missing '%s'", k)
			}
		}
	}
}

// checkNotifications warns on notification templates that are still
// bracket placeholders, pending tenant resolution.
func checkNotifications(workflow map[string]any, issues *datatypes.IssueList) {
	notifications, _ := workflow["notifications"].([]any)
	for i, raw := range notifications {
		n, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		tmpl := getString(n, "template")
		if strings.HasPrefix(tmpl, "<") && strings.Contains(tmpl, ">") {
			issues.Warnf(fmt.Sprintf("workflow.notifications[%d]", i+1),
				"Notification template is a placeholder; map via tenant config")
		}
	}
}

// checkReachability runs the tri-state DFS from the start block.
//
// Simple from/to existence checks pass graphs that are cyclic or carry
// unreachable islands; this pass closes that gap. A cycle is an error
// naming the edge that re-enters an active block; unreached blocks warn;
// never reaching a stop block is an error.
func checkReachability(startID string, orderedIDs []string,
	blockType map[string]datatypes.BlockType, blockIndex map[string]int,
	outgoing map[string][]datatypes.WorkflowLink, issues *datatypes.IssueList) {

	state := make(map[string]visitState, len(blockType))
	reachedStop := false

	var visit func(id string)
	visit = func(id string) {
		state[id] = inProgress
		if blockType[id] == datatypes.BlockStop {
			reachedStop = true
		}
		for _, link := range outgoing[id] {
			switch state[link.To] {
			case inProgress:
				issues.Errorf("workflow.links",
					"Cycle detected: edge %s -[%s]-> %s re-enters an active block",
					link.From, link.Exit, link.To)
			case unvisited:
				visit(link.To)
			}
		}
		state[id] = done
	}
	visit(startID)

	// Report unreachable blocks in document order.
	for _, id := range orderedIDs {
		if state[id] != done {
			issues.Warnf(fmt.Sprintf("workflow.blocks[%d]", blockIndex[id]),
				"Block '%s' is unreachable from the start block", id)
		}
	}

	if !reachedStop {
		issues.Errorf("workflow.blocks",
			"No terminating path: traversal from the start block never reaches a stop block")
	}
}
