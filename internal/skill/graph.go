package skill

import (
	"fmt"
	"sort"
	"strings"
)

// Set is an indexed view over a goal's full skill slice, spanning all
// quests. It is rebuilt from the store on demand; the underlying skills are
// shared pointers so mutations are visible to the caller.
type Set struct {
	skills     []*Skill
	byID       map[string]*Skill
	dependents map[string][]string
}

// NewSet builds the index. Order within the input slice is preserved by
// Ordered(); callers should pass skills sorted by (quest order, order index).
func NewSet(skills []*Skill) *Set {
	s := &Set{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		dependents: make(map[string][]string),
	}
	for _, sk := range skills {
		s.byID[sk.ID] = sk
	}
	for _, sk := range skills {
		for _, pre := range sk.PrerequisiteIDs {
			s.dependents[pre] = append(s.dependents[pre], sk.ID)
		}
	}
	return s
}

// Get returns a skill by ID, or nil.
func (s *Set) Get(id string) *Skill { return s.byID[id] }

// Ordered returns all skills in input order.
func (s *Set) Ordered() []*Skill { return s.skills }

// Dependents returns the IDs of skills that list id as a prerequisite,
// sorted for determinism.
func (s *Set) Dependents(id string) []string {
	deps := make([]string, len(s.dependents[id]))
	copy(deps, s.dependents[id])
	sort.Strings(deps)
	return deps
}

// PrereqsMet reports whether every prerequisite of sk sits at practicing or
// mastered. Missing prerequisite IDs count as unmet.
func (s *Set) PrereqsMet(sk *Skill) bool {
	for _, pre := range sk.PrerequisiteIDs {
		p := s.byID[pre]
		if p == nil || !PrereqSatisfied(p.Mastery) {
			return false
		}
	}
	return true
}

// Validate performs the structural checks run at plan initialization:
// duplicate IDs, dangling prerequisites, and cycles (Kahn's algorithm).
// Cross-quest prerequisites are chained forward-only during decomposition,
// but the check guards against caller-supplied graphs as well.
func Validate(skills []*Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	for _, sk := range skills {
		if idSet[sk.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", sk.ID))
		}
		idSet[sk.ID] = true
	}

	for _, sk := range skills {
		for _, pre := range sk.PrerequisiteIDs {
			if !idSet[pre] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", sk.ID, pre))
			}
		}
	}

	inDegree := make(map[string]int, len(skills))
	adj := make(map[string][]string)
	for _, sk := range skills {
		inDegree[sk.ID] = len(sk.PrerequisiteIDs)
		for _, pre := range sk.PrerequisiteIDs {
			adj[pre] = append(adj[pre], sk.ID)
		}
	}

	var queue []string
	for _, sk := range skills {
		if inDegree[sk.ID] == 0 {
			queue = append(queue, sk.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, sk := range skills {
			if inDegree[sk.ID] > 0 {
				cycleNodes = append(cycleNodes, sk.ID)
			}
		}
		sort.Strings(cycleNodes)
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
