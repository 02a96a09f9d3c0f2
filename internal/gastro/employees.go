package gastro

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/johny-gastrobar/backoffice/internal/enum"
)

// Employee is a tagged union over the staff role: the wire shape carries the
// base fields plus the fields of exactly one role variant, discriminated by
// "tipo". Details holds the decoded variant; it is nil for unknown tags so
// that consumers that only need the tag and name (the order workflow) still
// work against a newer backend.
type Employee struct {
	ID             *int        `json:"id,omitempty"`
	Name           string      `json:"nome"`
	CPF            string      `json:"cpf"`
	Salary         float64     `json:"salario"`
	HiredAt        string      `json:"dataContratacao"`
	Street         string      `json:"rua"`
	Number         string      `json:"numero"`
	District       string      `json:"bairro"`
	City           string      `json:"cidade"`
	State          string      `json:"estado"`
	PostalCode     string      `json:"cep"`
	SupervisorID   *int        `json:"idSupervisor,omitempty"`
	SupervisorName *string     `json:"nomeSupervisor,omitempty"`
	Phones         []string    `json:"telefones"`
	Dependents     []Dependent `json:"dependentes"`
	Role           string      `json:"tipo"`
	Details        RoleDetails `json:"-"`
}

// Dependent is a family member on an employee's record.
type Dependent struct {
	Name         string `json:"nomeDependente"`
	BirthDate    string `json:"dataNascimento"`
	Relationship string `json:"parentesco"`
}

// RoleDetails is the variant half of the Employee union.
type RoleDetails interface {
	RoleTag() string
}

type WaiterDetails struct {
	Section string `json:"setorAtendimento"`
}

func (WaiterDetails) RoleTag() string { return enum.RoleWaiter }

type CookDetails struct {
	Specialty string `json:"especialidadeCulinaria"`
}

func (CookDetails) RoleTag() string { return enum.RoleCook }

type BartenderDetails struct {
	Specialty string `json:"especialidadeBar"`
}

func (BartenderDetails) RoleTag() string { return enum.RoleBartender }

type ManagerDetails struct {
	AccessLevel   string  `json:"nivelAcesso"`
	DiscountLimit float64 `json:"limiteDesconto"`
}

func (ManagerDetails) RoleTag() string { return enum.RoleManager }

// employeeAlias avoids recursing into the custom JSON methods.
type employeeAlias Employee

func (e *Employee) UnmarshalJSON(data []byte) error {
	var base employeeAlias
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}
	*e = Employee(base)

	switch e.Role {
	case enum.RoleWaiter:
		var d WaiterDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		e.Details = d
	case enum.RoleCook:
		var d CookDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		e.Details = d
	case enum.RoleBartender:
		var d BartenderDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		e.Details = d
	case enum.RoleManager:
		var d ManagerDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		e.Details = d
	}
	return nil
}

func (e Employee) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(employeeAlias(e))
	if err != nil {
		return nil, err
	}
	if e.Details == nil {
		return raw, nil
	}
	if e.Role != "" && e.Role != e.Details.RoleTag() {
		return nil, fmt.Errorf("employee role %q does not match details for %q", e.Role, e.Details.RoleTag())
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, err
	}
	detailRaw, err := json.Marshal(e.Details)
	if err != nil {
		return nil, err
	}
	var detailFields map[string]json.RawMessage
	if err := json.Unmarshal(detailRaw, &detailFields); err != nil {
		return nil, err
	}
	for k, v := range detailFields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// FilterByRole returns the employees carrying the given role tag. Role
// filtering happens on this side; the backend has no role query parameter.
func FilterByRole(employees []Employee, role string) []Employee {
	var out []Employee
	for _, e := range employees {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out
}

// EmployeeService wraps the /funcionarios endpoints.
type EmployeeService struct {
	c *Client
}

func NewEmployeeService(c *Client) *EmployeeService {
	return &EmployeeService{c: c}
}

func (s *EmployeeService) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := s.c.get(ctx, "/funcionarios", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int) (Employee, error) {
	var out Employee
	if err := s.c.get(ctx, fmt.Sprintf("/funcionarios/%d", id), &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *EmployeeService) Create(ctx context.Context, e Employee) (Employee, error) {
	var out Employee
	if err := s.c.post(ctx, "/funcionarios", e, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int, e Employee) (Employee, error) {
	var out Employee
	if err := s.c.put(ctx, fmt.Sprintf("/funcionarios/%d", id), e, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/funcionarios/%d", id))
}
