package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

type ClientMessage struct {
	Client  *Client
	Message []byte
}

// Manager indexes connections by sync slot so that a backup from one device
// can be announced to every other device sharing the same sync id.
type Manager struct {
	clients        map[string]*Client
	slotIndex      map[string]map[string]bool
	clientsMutex   sync.RWMutex
	Register       chan *Client
	Unregister     chan *Client
	HandleMessage  chan *ClientMessage
	maxConnPerSlot int
	writeWait      time.Duration
	pongWait       time.Duration
	pingPeriod     time.Duration
}

func NewManager(maxConnPerSlot int, writeWait, pongWait, pingPeriod time.Duration) *Manager {
	return &Manager{
		clients:        make(map[string]*Client),
		slotIndex:      make(map[string]map[string]bool),
		Register:       make(chan *Client),
		Unregister:     make(chan *Client),
		HandleMessage:  make(chan *ClientMessage),
		maxConnPerSlot: maxConnPerSlot,
		writeWait:      writeWait,
		pongWait:       pongWait,
		pingPeriod:     pingPeriod,
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.Register:
			m.registerClient(client)

		case client := <-m.Unregister:
			m.unregisterClient(client)

		case clientMsg := <-m.HandleMessage:
			m.processMessage(clientMsg)
		}
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if m.slotIndex[client.SyncID] == nil {
		m.slotIndex[client.SyncID] = make(map[string]bool)
	}

	if len(m.slotIndex[client.SyncID]) >= m.maxConnPerSlot {
		log.Printf("max connections reached for sync id %s", client.SyncID)
		close(client.Send)
		return
	}

	m.clients[client.ID] = client
	m.slotIndex[client.SyncID][client.ID] = true

	log.Printf("client registered: %s (sync: %s, device: %s)", client.ID, client.SyncID, client.DeviceID)
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		delete(m.slotIndex[client.SyncID], client.ID)

		if len(m.slotIndex[client.SyncID]) == 0 {
			delete(m.slotIndex, client.SyncID)
		}

		close(client.Send)
		log.Printf("client unregistered: %s", client.ID)
	}
}

// processMessage only answers pings; devices never push state over the
// socket, backups go through the HTTP API.
func (m *Manager) processMessage(clientMsg *ClientMessage) {
	var msg Message
	if err := json.Unmarshal(clientMsg.Message, &msg); err != nil {
		log.Printf("error unmarshaling message: %v", err)
		return
	}

	if msg.Type == TypePing {
		pong, err := NewMessage(TypePong, nil)
		if err != nil {
			return
		}
		if err := m.SendToClient(clientMsg.Client.ID, pong); err != nil {
			log.Printf("error sending pong: %v", err)
		}
	}
}

// BroadcastToSlot delivers a message to every device on a sync id except the
// one that triggered it.
func (m *Manager) BroadcastToSlot(syncID string, message *Message, excludeDeviceID string) error {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	clientIDs, exists := m.slotIndex[syncID]
	if !exists {
		return nil
	}

	for clientID := range clientIDs {
		client := m.clients[clientID]
		if client.DeviceID != excludeDeviceID {
			select {
			case client.Send <- messageBytes:
			default:
				log.Printf("client %s send buffer full, closing connection", clientID)
				m.Unregister <- client
			}
		}
	}

	return nil
}

func (m *Manager) SendToClient(clientID string, message *Message) error {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	client, exists := m.clients[clientID]
	if !exists {
		return nil
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	select {
	case client.Send <- messageBytes:
	default:
		log.Printf("client %s send buffer full", clientID)
	}

	return nil
}

func (m *Manager) SlotConnections(syncID string) int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	if clients, exists := m.slotIndex[syncID]; exists {
		return len(clients)
	}
	return 0
}
