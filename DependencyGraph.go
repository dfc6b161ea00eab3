package main

import (
	"strconv"
	"strings"
)

// DependencyGraph tracks, per formula-holding cell, the set of cell ids
// its formula reads from. Entries exist only while the cell holds a
// formula.
type DependencyGraph struct {
	dependsOn map[string]map[string]bool
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		dependsOn: map[string]map[string]bool{},
	}
}

const dependencyOperators = "+-*/"

// ExtractDependencies splits a formula body on arithmetic operators and
// keeps every trimmed token that does not parse as a number. Tokens are
// deliberately not validated as cell ids here.
func ExtractDependencies(formulaBody string) []string {
	parts := strings.FieldsFunc(formulaBody, func(r rune) bool {
		return strings.ContainsRune(dependencyOperators, r)
	})

	dependencies := make([]string, 0, len(parts))
	seen := map[string]bool{}
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" || seen[token] {
			continue
		}
		if _, err := strconv.ParseFloat(token, 64); err == nil {
			continue
		}
		seen[token] = true
		dependencies = append(dependencies, token)
	}

	return dependencies
}

// SetDependsOn replaces the cell's dependency set.
func (g *DependencyGraph) SetDependsOn(cellId string, dependingOnCellIds []string) {
	set := make(map[string]bool, len(dependingOnCellIds))
	for _, dependingOnCellId := range dependingOnCellIds {
		set[dependingOnCellId] = true
	}
	g.dependsOn[cellId] = set
}

// Clear drops the cell's dependency entry entirely.
func (g *DependencyGraph) Clear(cellId string) {
	delete(g.dependsOn, cellId)
}

// DependsOn reports whether cellId's formula reads dependingOnCellId.
func (g *DependencyGraph) DependsOn(cellId string, dependingOnCellId string) bool {
	return g.dependsOn[cellId][dependingOnCellId]
}

// Snapshot returns a copy of the cell's dependency set and whether an
// entry exists, so a failed update can be rolled back.
func (g *DependencyGraph) Snapshot(cellId string) ([]string, bool) {
	set, ok := g.dependsOn[cellId]
	if !ok {
		return nil, false
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids, true
}

// Restore puts back a snapshot taken before an update.
func (g *DependencyGraph) Restore(cellId string, snapshot []string, existed bool) {
	if !existed {
		g.Clear(cellId)
		return
	}
	g.SetDependsOn(cellId, snapshot)
}

// HasDirectCycle walks the graph breadth-first from cellId and reports
// whether any reachable cell's dependency set names cellId itself. The
// traversal is transitive but the test is a direct back-edge only, so a
// pure three-cell cycle goes undetected. That asymmetry is a documented
// limitation and kept as-is; deep cycles are caught at evaluation time
// by the recursion depth guard instead.
func (g *DependencyGraph) HasDirectCycle(cellId string) bool {
	visited := map[string]bool{cellId: true}
	queue := []string{cellId}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for dependingOnCellId := range g.dependsOn[current] {
			if dependingOnCellId == cellId {
				return true
			}
			if !visited[dependingOnCellId] {
				visited[dependingOnCellId] = true
				queue = append(queue, dependingOnCellId)
			}
		}
	}

	return false
}
