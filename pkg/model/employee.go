package model

// Employee 员工：标识、所属职能集合、由职能并集得出的资格班次集合，以及个人约束列表
type Employee struct {
	ID             string
	Name           string
	FunctionIDs    map[string]struct{}
	Qualifications map[string]struct{}
	Constraints    []Constraint
}

// NewEmployee 构造员工。functionIDs 给出该员工所属的职能标识集合，
// qualifications 给出由这些职能解析出的资格班次并集（由调用方依据职能目录计算），
// rawConstraints 为原始约束字符串，在此一次性解析为 Constraint 值；
// 无法识别的约束项会被跳过并通过 warn 回调上报，不会中断员工的构造。
func NewEmployee(id, name string, functionIDs []string, qualifications map[string]struct{}, rawConstraints []string, warn func(employeeID, raw string, err error)) Employee {
	fnSet := make(map[string]struct{}, len(functionIDs))
	for _, f := range functionIDs {
		fnSet[f] = struct{}{}
	}

	var constraints []Constraint
	for _, raw := range rawConstraints {
		parsed, err := ParseConstraint(raw)
		if err != nil {
			if warn != nil {
				warn(id, raw, err)
			}
			continue
		}
		constraints = append(constraints, parsed...)
	}

	return Employee{
		ID:             id,
		Name:           name,
		FunctionIDs:    fnSet,
		Qualifications: qualifications,
		Constraints:    constraints,
	}
}

// HasFunction 报告员工是否具有给定职能
func (e Employee) HasFunction(functionID string) bool {
	_, ok := e.FunctionIDs[functionID]
	return ok
}

// IsQualifiedFor 报告员工是否有资格承担给定班次
func (e Employee) IsQualifiedFor(shiftID string) bool {
	_, ok := e.Qualifications[shiftID]
	return ok
}

// MaxHours 返回员工的月度最大工时约束（小时），未设置时返回 0, false
func (e Employee) MaxHours() (int, bool) {
	for _, c := range e.Constraints {
		if c.Kind == KindMaxHours {
			return c.Value, true
		}
	}
	return 0, false
}

// MaxShiftsPerQualif 返回员工在给定职能上的月度最大班次数约束，未设置时返回 0, false
func (e Employee) MaxShiftsPerQualif(functionID string) (int, bool) {
	for _, c := range e.Constraints {
		if c.Kind == KindMaxShiftsPerQualif && c.Function == functionID {
			return c.Value, true
		}
	}
	return 0, false
}
