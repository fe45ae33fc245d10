package scoring

import "strings"

// Lookup is an immutable case-insensitive index from candidate skill name to
// proficiency. It is built once per recommendation call and handed to every
// scorer that needs it, so iteration order (and therefore substring
// tie-breaking) is fixed by the order skills were loaded.
type Lookup struct {
	entries []lookupEntry
	byName  map[string]int
}

type lookupEntry struct {
	name        string
	proficiency int
}

func BuildLookup(skills []CandidateSkill) Lookup {
	l := Lookup{byName: make(map[string]int, len(skills))}
	for _, s := range skills {
		name := strings.ToLower(strings.TrimSpace(s.SkillName))
		if name == "" {
			continue
		}
		if _, ok := l.byName[name]; ok {
			continue
		}
		prof := s.ProficiencyLevel
		if prof < 1 {
			prof = 1
		}
		if prof > 5 {
			prof = 5
		}
		l.byName[name] = prof
		l.entries = append(l.entries, lookupEntry{name: name, proficiency: prof})
	}
	return l
}

func (l Lookup) Len() int {
	return len(l.entries)
}

func (l Lookup) Names() []string {
	out := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.name)
	}
	return out
}

// ScoreSkills compares a posting's required skills against the candidate
// lookup. An exact case-insensitive hit contributes proficiency/5, a substring
// hit (either direction, first lookup entry wins) contributes proficiency/10.
// Each posting skill is matched at most once. The score blends the share of
// matched skills (60%) with the mean contribution (40%).
func ScoreSkills(lookup Lookup, postingSkills []string) (float64, []string) {
	if len(postingSkills) == 0 {
		return 0, nil
	}

	matched := make([]string, 0, len(postingSkills))
	var contribSum float64
	var contribCount int

	for _, raw := range postingSkills {
		ps := strings.ToLower(strings.TrimSpace(raw))
		if ps == "" {
			continue
		}

		if prof, ok := lookup.byName[ps]; ok {
			matched = append(matched, raw)
			contribSum += float64(prof) / 5.0
			contribCount++
			continue
		}

		for _, e := range lookup.entries {
			if strings.Contains(ps, e.name) || strings.Contains(e.name, ps) {
				matched = append(matched, raw)
				contribSum += float64(e.proficiency) / 10.0
				contribCount++
				break
			}
		}
	}

	if contribCount == 0 {
		return 0, nil
	}

	matchRatio := float64(len(matched)) / float64(len(postingSkills))
	avgContribution := contribSum / float64(contribCount)

	return round3(0.6*matchRatio + 0.4*avgContribution), matched
}
