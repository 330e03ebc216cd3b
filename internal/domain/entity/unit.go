package entity

// Unit unidad de medida de un producto o movimiento (conjunto cerrado).
type Unit string

const (
	UnitKG Unit = "KG" // kilogramo
	UnitG  Unit = "G"  // gramo
	UnitL  Unit = "L"  // litro
	UnitUN Unit = "UN" // unidad (conteo)
	UnitCX Unit = "CX" // caja
)

// Units devuelve todas las unidades admitidas, en orden estable.
func Units() []Unit {
	return []Unit{UnitKG, UnitG, UnitL, UnitUN, UnitCX}
}

// Valid indica si la unidad pertenece al conjunto admitido.
func (u Unit) Valid() bool {
	switch u {
	case UnitKG, UnitG, UnitL, UnitUN, UnitCX:
		return true
	}
	return false
}

func (u Unit) String() string { return string(u) }
