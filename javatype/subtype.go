package javatype

// IsAssignableFrom reports whether sub <: super: reflexive,
// transitive through the supertype chain, transitive through interfaces, and
// covariant for arrays in their element type.
func IsAssignableFrom(super, sub Type) bool {
	if super == nil || sub == nil {
		return false
	}
	if superArr, ok := super.(Array); ok {
		subArr, ok := sub.(Array)
		if !ok {
			return false
		}
		return IsAssignableFrom(superArr.Element, subArr.Element)
	}

	superClass, okSuper := AsClass(super)
	subClass, okSub := AsClass(sub)
	if !okSuper || !okSub {
		return super.FQN() == sub.FQN()
	}

	for _, candidate := range subClass.Closure() {
		if candidate.FQN() == superClass.FQN() {
			return true
		}
	}
	return false
}

// AsClass narrows t to a *Class, if it is one.
func AsClass(t Type) (*Class, bool) {
	c, ok := t.(*Class)
	return c, ok && c != nil
}

// AsPackage narrows an Owner to a Package, if it is one.
func AsPackage(o Owner) (Package, bool) {
	p, ok := o.(Package)
	return p, ok
}
