package vision

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Classifier runs the pretrained emotion model through ONNX Runtime. The
// session and its bound tensors are not safe for concurrent Run calls, so
// inference is serialized behind a mutex.
type Classifier struct {
	mu sync.Mutex

	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// LoadClassifier loads the model artifact eagerly. A failure here is a
// startup condition: the caller keeps serving but refuses detection requests
// until the artifact is fixed.
func LoadClassifier(modelPath, onnxLibPath string) (*Classifier, error) {
	if onnxLibPath != "" {
		ort.SetSharedLibraryPath(onnxLibPath)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("onnx init environment: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx get input/output info: %w", err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, fmt.Errorf("onnx model has no inputs or outputs")
	}

	inputTensor, err := ort.NewEmptyTensor[float32](inputs[0].Dimensions)
	if err != nil {
		return nil, fmt.Errorf("onnx new input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputs[0].Dimensions)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("onnx new output tensor: %w", err)
	}

	inputNames := make([]string, len(inputs))
	for i := range inputs {
		inputNames[i] = inputs[i].Name
	}
	outputNames := make([]string, len(outputs))
	for i := range outputs {
		outputNames[i] = outputs[i].Name
	}

	session, err := ort.NewAdvancedSession(modelPath, inputNames, outputNames,
		[]ort.Value{inputTensor}, []ort.Value{outputTensor}, nil)
	if err != nil {
		outputTensor.Destroy()
		inputTensor.Destroy()
		return nil, fmt.Errorf("onnx new session: %w", err)
	}

	return &Classifier{
		session: session,
		input:   inputTensor,
		output:  outputTensor,
	}, nil
}

// Infer feeds one preprocessed 1x48x48x1 tensor through the model and returns
// a copy of the score vector over Labels.
func (c *Classifier) Infer(tensor []float32) ([]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	inData := c.input.GetData()
	if len(inData) != len(tensor) {
		return nil, fmt.Errorf("input tensor size %d, preprocessed %d", len(inData), len(tensor))
	}
	copy(inData, tensor)

	if err := c.session.Run(); err != nil {
		return nil, fmt.Errorf("onnx run: %w", err)
	}

	outData := c.output.GetData()
	probs := make([]float32, len(outData))
	copy(probs, outData)
	return probs, nil
}

// Close releases the session and its tensors.
func (c *Classifier) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		c.session.Destroy()
		c.session = nil
	}
	if c.output != nil {
		c.output.Destroy()
		c.output = nil
	}
	if c.input != nil {
		c.input.Destroy()
		c.input = nil
	}
}
