package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"warehouse-chat-be/internal/dto"
	"warehouse-chat-be/internal/model"
	"warehouse-chat-be/internal/repository/contract"
	"warehouse-chat-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	docRepo           contract.DocumentEmbeddingRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	docRepo contract.DocumentEmbeddingRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		docRepo:           docRepo,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}
	if payload.Document == "" {
		log.Printf("[ERROR] Embed event with empty document, dropping")
		msg.Ack()
		return
	}

	vector, err := cs.embeddingProvider.Generate(ctx, payload.Document)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	now := time.Now()
	doc := &model.DocumentEmbedding{
		Id:             uuid.New(),
		Document:       payload.Document,
		EmbeddingValue: pgvector.NewVector(vector),
		Metadata:       datatypes.JSONMap(payload.Metadata),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := cs.docRepo.Create(ctx, doc); err != nil {
		log.Printf("[ERROR] Failed to store embedding: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Document embedded and stored: %s", doc.Id)
	msg.Ack()
}
