package arcade

// CollisionHandler resolves contacts between the player and one pool.
type CollisionHandler interface {
	Kind() Kind
	Pool(r *Round) *Pool
	Resolve(r *Round, other *Body)
}

// EnemyCollision is the destructive contact: the larger body survives and
// a tie goes to the enemy.
type EnemyCollision struct{}

func (EnemyCollision) Kind() Kind {
	return KindEnemy
}

func (EnemyCollision) Pool(r *Round) *Pool {
	return r.Enemies
}

func (EnemyCollision) Resolve(r *Round, enemy *Body) {
	p := r.Player
	if p.Extent() > enemy.Extent() {
		enemy.Kill()
		p.QueueGrowth()
		p.Score++
		return
	}
	r.killPlayer()
}

// FoodOverlap always consumes the food, whatever the sizes.
type FoodOverlap struct{}

func (FoodOverlap) Kind() Kind {
	return KindFood
}

func (FoodOverlap) Pool(r *Round) *Pool {
	return r.Food
}

func (FoodOverlap) Resolve(r *Round, food *Body) {
	food.Kill()
	r.Player.QueueGrowth()
	r.Player.Score++
	r.host.PlaySound(SoundCollect)
}
