package loader

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/strider-engine/strider-go/engine/animation"
)

// extractClip converts a single glTF animation into an engine Clip.
// Translation, rotation, and scale channels targeting the same node are
// merged into one Channel. Morph target weight channels are skipped.
//
// Parameters:
//   - doc: the parsed glTF document
//   - animIndex: the index of the animation in the document
//
// Returns:
//   - *animation.Clip: the extracted clip
//   - error: error if extraction fails
func extractClip(doc *gltf.Document, animIndex int) (*animation.Clip, error) {
	if animIndex < 0 || animIndex >= len(doc.Animations) {
		return nil, fmt.Errorf("animation index %d out of range", animIndex)
	}

	anim := doc.Animations[animIndex]

	// channelMap groups channels by node index so translation/rotation/scale
	// merge into a single Channel per node.
	channelMap := make(map[int32]*animation.Channel)

	var maxTime float32

	for i, ch := range anim.Channels {
		// Skip channels with no target node (e.g. KHR_animation_pointer targets)
		if ch.Target.Node == nil {
			continue
		}
		nodeIndex := int32(*ch.Target.Node)

		if ch.Sampler == nil || int(*ch.Sampler) >= len(anim.Samplers) {
			return nil, fmt.Errorf("animation %q channel %d: invalid sampler index", anim.Name, i)
		}
		sampler := anim.Samplers[*ch.Sampler]

		timestamps, err := readScalarAccessor(doc, sampler.Input)
		if err != nil {
			return nil, fmt.Errorf("animation %q channel %d: failed to read timestamps: %w", anim.Name, i, err)
		}

		// Track max timestamp for duration
		if len(timestamps) > 0 {
			if t := timestamps[len(timestamps)-1]; t > maxTime {
				maxTime = t
			}
		}

		// Get or create channel entry for this node
		animCh, exists := channelMap[nodeIndex]
		if !exists {
			animCh = &animation.Channel{NodeIndex: nodeIndex}
			channelMap[nodeIndex] = animCh
		}

		switch ch.Target.Path {
		case gltf.TRSTranslation:
			values, err := readVec3Accessor(doc, sampler.Output)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: failed to read translation values: %w", anim.Name, i, err)
			}
			keys := make([]animation.VectorKeyframe, min(len(timestamps), len(values)))
			for j := range keys {
				keys[j] = animation.VectorKeyframe{Time: timestamps[j], Value: values[j]}
			}
			animCh.PositionKeys = keys

		case gltf.TRSRotation:
			values, err := readVec4Accessor(doc, sampler.Output)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: failed to read rotation values: %w", anim.Name, i, err)
			}
			keys := make([]animation.QuaternionKeyframe, min(len(timestamps), len(values)))
			for j := range keys {
				keys[j] = animation.QuaternionKeyframe{Time: timestamps[j], Value: values[j]}
			}
			animCh.RotationKeys = keys

		case gltf.TRSScale:
			values, err := readVec3Accessor(doc, sampler.Output)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: failed to read scale values: %w", anim.Name, i, err)
			}
			keys := make([]animation.VectorKeyframe, min(len(timestamps), len(values)))
			for j := range keys {
				keys[j] = animation.VectorKeyframe{Time: timestamps[j], Value: values[j]}
			}
			animCh.ScaleKeys = keys

		case gltf.TRSWeights:
			// Morph target weights are not supported; skip
			continue
		}
	}

	// Flatten channel map into slice
	channels := make([]animation.Channel, 0, len(channelMap))
	for _, ch := range channelMap {
		channels = append(channels, *ch)
	}

	name := anim.Name
	if name == "" {
		name = fmt.Sprintf("animation_%d", animIndex)
	}

	return &animation.Clip{
		Name:     name,
		Duration: maxTime,
		Channels: channels,
	}, nil
}

// readScalarAccessor reads an accessor as scalar float data.
func readScalarAccessor(doc *gltf.Document, accessorIndex uint32) ([]float32, error) {
	acc := doc.Accessors[accessorIndex]
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("accessor is not SCALAR: type=%v", acc.Type)
	}

	var buffer []float32
	data, err := modeler.ReadAccessor(doc, acc, buffer)
	if err != nil {
		return nil, err
	}
	return data.([]float32), nil
}

// readVec3Accessor reads an accessor as vec3 float data.
func readVec3Accessor(doc *gltf.Document, accessorIndex uint32) ([][3]float32, error) {
	acc := doc.Accessors[accessorIndex]
	if acc.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("accessor is not VEC3: type=%v", acc.Type)
	}

	var buffer [][3]float32
	data, err := modeler.ReadAccessor(doc, acc, buffer)
	if err != nil {
		return nil, err
	}
	return data.([][3]float32), nil
}

// readVec4Accessor reads an accessor as vec4 float data.
func readVec4Accessor(doc *gltf.Document, accessorIndex uint32) ([][4]float32, error) {
	acc := doc.Accessors[accessorIndex]
	if acc.Type != gltf.AccessorVec4 {
		return nil, fmt.Errorf("accessor is not VEC4: type=%v", acc.Type)
	}

	var buffer [][4]float32
	data, err := modeler.ReadAccessor(doc, acc, buffer)
	if err != nil {
		return nil, err
	}
	return data.([][4]float32), nil
}
