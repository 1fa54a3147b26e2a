// Package ontology holds the static career-domain and program catalog used
// to gate course eligibility. The catalog is hand-authored, loaded once, and
// read-only; declaration order is significant, because resolution is
// first-keyword-substring-match-wins for both domains and programs.
package ontology

import "strings"

// DomainGeneral is the sentinel returned when no domain intent matches.
const DomainGeneral = "general"

// Program describes one recognizable program: the keywords that identify it
// in a course name and the academic requirements it imposes.
type Program struct {
	Name            string
	Keywords        []string
	RequiredStreams []string
	RequiredExams   []string
}

// Domain groups programs under a career domain with the intent keywords
// that recognize it in free-text career goals.
type Domain struct {
	Name     string
	Intents  []string
	Programs []Program
}

// catalog is an ordered slice, not a map: a generic keyword declared early
// shadows a more specific one declared later, and that ordering is part of
// the eligibility contract.
var catalog = []Domain{
	{
		Name:    "engineering",
		Intents: []string{"engineer", "technology", "software", "developer", "coding", "robotics"},
		Programs: []Program{
			{
				Name:            "btech",
				Keywords:        []string{"b.tech", "btech", "bachelor of technology", "b.e", "engineering"},
				RequiredStreams: []string{"pcm"},
				RequiredExams:   []string{"jee"},
			},
			{
				Name:            "bca",
				Keywords:        []string{"bca", "computer application"},
				RequiredStreams: []string{"pcm", "commerce", "science"},
			},
		},
	},
	{
		Name:    "medical",
		Intents: []string{"doctor", "medicine", "medical", "surgeon", "healthcare", "nurse"},
		Programs: []Program{
			{
				Name:            "mbbs",
				Keywords:        []string{"mbbs", "bachelor of medicine"},
				RequiredStreams: []string{"pcb"},
				RequiredExams:   []string{"neet"},
			},
			{
				Name:            "nursing",
				Keywords:        []string{"nursing"},
				RequiredStreams: []string{"pcb", "science"},
			},
			{
				Name:            "pharmacy",
				Keywords:        []string{"b.pharm", "pharmacy"},
				RequiredStreams: []string{"pcb", "pcm"},
			},
		},
	},
	{
		Name:    "commerce",
		Intents: []string{"business", "commerce", "accounting", "finance", "entrepreneur", "banking"},
		Programs: []Program{
			{
				Name:            "bcom",
				Keywords:        []string{"b.com", "bcom", "bachelor of commerce"},
				RequiredStreams: []string{"commerce"},
			},
			{
				Name:            "bba",
				Keywords:        []string{"bba", "business administration"},
				RequiredStreams: []string{"commerce", "science", "arts"},
			},
			{
				Name:            "ca",
				Keywords:        []string{"chartered accountancy", "ca foundation"},
				RequiredStreams: []string{"commerce"},
			},
		},
	},
	{
		Name:    "law",
		Intents: []string{"law", "lawyer", "legal", "judge", "advocate"},
		Programs: []Program{
			{
				Name:            "llb",
				Keywords:        []string{"llb", "ll.b", "law"},
				RequiredStreams: []string{"arts", "commerce", "science"},
				RequiredExams:   []string{"clat"},
			},
		},
	},
	{
		Name:    "design",
		Intents: []string{"design", "fashion", "creative", "artist", "animation"},
		Programs: []Program{
			{
				Name:            "bdes",
				Keywords:        []string{"b.des", "design", "fine arts"},
				RequiredStreams: []string{"arts", "science", "commerce"},
			},
		},
	},
}

// Domains returns the ordered catalog. Callers must not mutate it.
func Domains() []Domain {
	return catalog
}

// ResolveDomain maps a student's free-text career goal to a domain name.
// The first domain (in declaration order) with an intent keyword that is a
// substring of the lowercased goal wins; no match yields DomainGeneral.
func ResolveDomain(careerGoal string) string {
	goal := strings.ToLower(careerGoal)
	for _, d := range catalog {
		for _, intent := range d.Intents {
			if strings.Contains(goal, intent) {
				return d.Name
			}
		}
	}
	return DomainGeneral
}

// ResolveProgram maps a course name to its program descriptor by scanning
// every program across every domain in declaration order. The first program
// with a keyword that is a substring of the lowercased course name wins;
// nil means the course is unrecognized and can never be recommended.
func ResolveProgram(courseName string) *Program {
	name := strings.ToLower(courseName)
	for _, d := range catalog {
		for i := range d.Programs {
			for _, kw := range d.Programs[i].Keywords {
				if strings.Contains(name, kw) {
					return &d.Programs[i]
				}
			}
		}
	}
	return nil
}
