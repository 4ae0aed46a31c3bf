package domain

// compatibilityTable maps a recipient group to the donor groups it can
// safely receive from. Each entry is listed in canonical enumeration order.
var compatibilityTable = map[BloodGroup][]BloodGroup{
	BloodGroupAPos:  {BloodGroupAPos, BloodGroupANeg, BloodGroupOPos, BloodGroupONeg},
	BloodGroupANeg:  {BloodGroupANeg, BloodGroupONeg},
	BloodGroupBPos:  {BloodGroupBPos, BloodGroupBNeg, BloodGroupOPos, BloodGroupONeg},
	BloodGroupBNeg:  {BloodGroupBNeg, BloodGroupONeg},
	BloodGroupABPos: AllBloodGroups(),
	BloodGroupABNeg: {BloodGroupANeg, BloodGroupBNeg, BloodGroupABNeg, BloodGroupONeg},
	BloodGroupOPos:  {BloodGroupOPos, BloodGroupONeg},
	BloodGroupONeg:  {BloodGroupONeg},
}

// CompatibleDonorGroups returns the donor groups a recipient of the given
// group may receive from, in canonical enumeration order.
// Returns ErrInvalidBloodGroup for a non-canonical recipient.
func CompatibleDonorGroups(recipient BloodGroup) ([]BloodGroup, error) {
	groups, ok := compatibilityTable[recipient]
	if !ok {
		return nil, ErrInvalidBloodGroup
	}
	out := make([]BloodGroup, 0, len(groups))
	for _, donor := range AllBloodGroups() {
		if recipient.CanReceiveFrom(donor) {
			out = append(out, donor)
		}
	}
	return out, nil
}

// CanReceiveFrom reports whether a recipient may receive blood from donor.
func (g BloodGroup) CanReceiveFrom(donor BloodGroup) bool {
	for _, candidate := range compatibilityTable[g] {
		if candidate == donor {
			return true
		}
	}
	return false
}

// CompatibilityRow is one line of a compatibility report: a donor group
// acceptable to the recipient and the number of registered donors in it.
type CompatibilityRow struct {
	Group BloodGroup
	Count int
}
