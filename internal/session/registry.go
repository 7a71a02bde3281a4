package session

import (
	"math/rand/v2"
	"sync"
)

// Alfabeto e tamanho do token de sala. Com poucas sessões simultâneas um
// token curto basta, desde que colisões sejam re-sorteadas e nunca
// sobrescrevam uma sala viva.
const (
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	tokenLength   = 6
)

// Registry é a tabela de sessões vivas, indexada pelo token da sala.
// É o único dono do mapa: criação, busca e remoção passam por aqui,
// protegidas pelo mutex.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*GameRoom
	rng   *rand.Rand
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*GameRoom),
		// PCG semeado fora do pacote crypto: o token não é segredo,
		// só precisa ser único entre as salas vivas.
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Register sorteia um token livre, grava-o na sala e a insere na tabela.
// Tudo dentro da mesma seção crítica: duas salas criadas ao mesmo tempo
// nunca recebem o mesmo token, e uma colisão re-sorteia em vez de
// sobrescrever.
func (r *Registry) Register(room *GameRoom) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := r.randomToken()
	for {
		if _, taken := r.rooms[token]; !taken {
			break
		}
		token = r.randomToken()
	}

	room.token = token
	r.rooms[token] = room
	return token
}

func (r *Registry) randomToken() string {
	b := make([]byte, tokenLength)
	for i := range b {
		b[i] = tokenAlphabet[r.rng.IntN(len(tokenAlphabet))]
	}
	return string(b)
}

// Get retorna a sala viva com esse token, ou nil.
func (r *Registry) Get(token string) *GameRoom {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[token]
}

// Remove tira a sala da tabela. Retorna false se ela já não estava lá,
// então remoções concorrentes (grace delay x desconexão) são inofensivas
// e cada sala sai da tabela no máximo uma vez.
func (r *Registry) Remove(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[token]; !ok {
		return false
	}
	delete(r.rooms, token)
	return true
}

// FindByClient varre as salas vivas atrás da que esse handle de conexão
// ainda ocupa. Ocupar é mais que aparecer na sala: a sessão precisa apontar
// para ela como sala atual. Uma sala terminada fica na tabela durante a
// carência, mas seus jogadores já saíram dela (CurrentRoom limpo no fim da
// partida), então quem re-pareou nesse meio tempo é encontrado na sala nova,
// nunca na antiga. Um handle ocupa no máximo uma sala por vez; a varredura
// para no primeiro resultado.
func (r *Registry) FindByClient(clientID string) *GameRoom {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.rooms {
		for _, p := range room.players {
			if p.session.Client.ID() == clientID && p.session.CurrentRoom == room {
				return room
			}
		}
	}
	return nil
}

// Len informa quantas sessões estão vivas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
