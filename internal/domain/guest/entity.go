package guest

type Guest struct {
	id    ID
	name  Name
	phone Phone
}

func NewGuest(id, name, phone string) (*Guest, error) {
	gid, err := NewID(id)
	if err != nil {
		return nil, err
	}
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	return &Guest{id: gid, name: n, phone: p}, nil
}

// ReconstructGuest skips validation for rows already in the store.
func ReconstructGuest(id, name, phone string) *Guest {
	return &Guest{
		id:    ID{value: id},
		name:  Name{value: name},
		phone: Phone{value: phone},
	}
}

// UpdateContact replaces name and phone together; the guest is untouched on error.
func (g *Guest) UpdateContact(name, phone string) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	g.name = n
	g.phone = p
	return nil
}

func (g *Guest) ID() ID       { return g.id }
func (g *Guest) Name() Name   { return g.name }
func (g *Guest) Phone() Phone { return g.phone }
