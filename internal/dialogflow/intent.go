package dialogflow

import (
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
)

// IntentDefinition is one intent in the trainer's input format:
//
//	{
//	    "display_name": "Name of an intent",
//	    "messages": [{"text": {"text": ["Response text"]}}],
//	    "training_phrases": [{"parts": [{"text": "First training phrase"}]}]
//	}
//
// The shape is not validated locally; a bad definition is rejected by the
// Dialogflow API when the trainer submits it.
type IntentDefinition struct {
	DisplayName     string           `json:"display_name"`
	Messages        []Message        `json:"messages"`
	TrainingPhrases []TrainingPhrase `json:"training_phrases"`
}

type Message struct {
	Text MessageText `json:"text"`
}

type MessageText struct {
	Text []string `json:"text"`
}

type TrainingPhrase struct {
	Parts []PhrasePart `json:"parts"`
}

type PhrasePart struct {
	Text string `json:"text"`
}

// ReadIntentsFile loads a JSON document with a list of intent definitions.
func ReadIntentsFile(path string) ([]IntentDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intents file: %w", err)
	}

	var intents []IntentDefinition
	if err := json.Unmarshal(raw, &intents); err != nil {
		return nil, fmt.Errorf("parse intents file: %w", err)
	}

	return intents, nil
}

func (d IntentDefinition) proto() *dialogflowpb.Intent {
	intent := &dialogflowpb.Intent{DisplayName: d.DisplayName}

	for _, message := range d.Messages {
		intent.Messages = append(intent.Messages, &dialogflowpb.Intent_Message{
			Message: &dialogflowpb.Intent_Message_Text_{
				Text: &dialogflowpb.Intent_Message_Text{Text: message.Text.Text},
			},
		})
	}

	for _, phrase := range d.TrainingPhrases {
		pbPhrase := &dialogflowpb.Intent_TrainingPhrase{
			Type: dialogflowpb.Intent_TrainingPhrase_EXAMPLE,
		}
		for _, part := range phrase.Parts {
			pbPhrase.Parts = append(pbPhrase.Parts, &dialogflowpb.Intent_TrainingPhrase_Part{
				Text: part.Text,
			})
		}
		intent.TrainingPhrases = append(intent.TrainingPhrases, pbPhrase)
	}

	return intent
}
