package model

// OthersGroupName is the fallback group every employee not explicitly
// listed in any named group is placed into.
const OthersGroupName = "11. Autres"

// Group is a named collection of employees used for equity rules (S4, S5)
// and for group-level overrides of the minimum-days-off rule.
type Group struct {
	Name      string
	Employees []Employee
}

// BuildGroups resolves raw group membership (group name -> member employee
// IDs) against the employee catalog. Members referencing an unknown
// employee id are skipped and reported via warn. Every employee absent from
// all named groups is collected into the OthersGroupName group. Groups left
// empty after resolution are dropped from the result.
func BuildGroups(membership map[string][]string, employees []Employee, warn func(groupName, employeeID string)) []Group {
	byID := make(map[string]Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	order := make([]string, 0, len(membership)+1)
	members := make(map[string][]Employee, len(membership)+1)
	assigned := make(map[string]struct{}, len(employees))

	for name := range membership {
		order = append(order, name)
	}
	order = append(order, OthersGroupName)

	for _, name := range order {
		for _, id := range membership[name] {
			emp, ok := byID[id]
			if !ok {
				if warn != nil {
					warn(name, id)
				}
				continue
			}
			members[name] = append(members[name], emp)
			assigned[id] = struct{}{}
		}
	}

	for _, e := range employees {
		if _, ok := assigned[e.ID]; !ok {
			members[OthersGroupName] = append(members[OthersGroupName], e)
		}
	}

	groups := make([]Group, 0, len(order))
	for _, name := range order {
		if len(members[name]) == 0 {
			continue
		}
		groups = append(groups, Group{Name: name, Employees: members[name]})
	}
	return groups
}
