package systems

import (
	"math/rand"
	"time"

	"realm-server/internal/config"
	"realm-server/internal/domain"
)

// Rand - источник случайности для крита, уклонения, выбора цели и лута.
// *rand.Rand подходит как есть; тесты подставляют заранее заданную последовательность.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand возвращает обычный несидированный генератор
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Notifier принимает игровые сообщения. Системы не знают, кому и как они доставляются.
type Notifier interface {
	// Log - сообщение для всех
	Log(msg string)
	// LogTo - сообщение одному игроку
	LogTo(playerID, msg string)
	// Combat - описание удара, всегда для всех
	Combat(msg string)
}

// Env - контекст одного шага симуляции. Создаётся движком, живёт до конца шага.
type Env struct {
	World  *domain.GameWorld
	Config *config.Config
	Rng    Rand
	Now    time.Time
	Notify Notifier

	// doomed - сущности, помеченные к удалению. Удаляются одной пачкой в Sweep.
	doomed map[string]struct{}
}

func NewEnv(world *domain.GameWorld, cfg *config.Config, rng Rand, now time.Time, n Notifier) *Env {
	return &Env{
		World:  world,
		Config: cfg,
		Rng:    rng,
		Now:    now,
		Notify: n,
		doomed: make(map[string]struct{}),
	}
}

// MarkDestroyed помечает сущность к удалению в конце шага
func (env *Env) MarkDestroyed(id string) {
	env.doomed[id] = struct{}{}
}

func (env *Env) IsDoomed(id string) bool {
	_, ok := env.doomed[id]
	return ok
}

// Sweep удаляет все помеченные сущности и возвращает их число
func (env *Env) Sweep() int {
	if len(env.doomed) == 0 {
		return 0
	}
	// Игроки, бившие удаляемые объекты, выходят из боя сразу, без висячих ссылок
	for _, p := range env.World.Registry.Players() {
		if env.IsDoomed(p.Player.Attacking) {
			p.Player.Attacking = ""
		}
	}
	n := env.World.Registry.RemoveAll(env.doomed)
	env.doomed = make(map[string]struct{})
	return n
}

// tickMs - длина шага в миллисекундах для счётчиков перезарядки
func (env *Env) tickMs() float64 {
	return float64(env.Config.TickMs)
}
