// internal/component/combat.go
package component

// Combat - таймер перезарядки атакующей башни.
type Combat struct {
	LastAttackTime float64 // ms игрового времени
	HasFired       bool
}

// Economy - накопитель времени экономической башни.
type Economy struct {
	Elapsed float64 // ms с последней выплаты
}
