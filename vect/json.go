package vect

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

func (v Vect) MarshalJSON() ([]byte, error) {
	return json.Marshal(&[2]Float{v.X, v.Y})
}

func (v *Vect) UnmarshalJSON(data []byte) error {
	vectData := [2]Float{}

	//try unmarshalling array form
	err := json.Unmarshal(data, &vectData)
	if err != nil {
		//try other form
		vectData := struct {
			X, Y Float
		}{}

		err := json.Unmarshal(data, &vectData)

		if err != nil {
			log.Printf("Error decoding Vect")
			return err
		}
		v.X = vectData.X
		v.Y = vectData.Y
		return nil
	}

	v.X = vectData[0]
	v.Y = vectData[1]

	return nil
}

func (v Vect) MarshalYAML() (interface{}, error) {
	return []Float{v.X, v.Y}, nil
}

// Accepts both the sequence form [x, y] and the mapping form {x: .., y: ..}.
func (v *Vect) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var vectData []Float
		if err := node.Decode(&vectData); err != nil {
			log.Printf("Error decoding Vect")
			return err
		}
		if len(vectData) != 2 {
			return fmt.Errorf("vect: expected 2 components, got %d", len(vectData))
		}
		v.X, v.Y = vectData[0], vectData[1]
		return nil
	}

	vectData := struct {
		X Float `yaml:"x"`
		Y Float `yaml:"y"`
	}{}
	if err := node.Decode(&vectData); err != nil {
		log.Printf("Error decoding Vect")
		return err
	}
	v.X, v.Y = vectData.X, vectData.Y
	return nil
}

// Vec2 converts v for renderers built on mathgl.
func (v Vect) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{float64(v.X), float64(v.Y)}
}

func FromVec2(v mgl64.Vec2) Vect {
	return Vect{Float(v[0]), Float(v[1])}
}
