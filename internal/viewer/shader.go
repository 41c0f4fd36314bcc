package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShaderSrc = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aColor;

uniform mat4 uProjection;
uniform mat4 uView;

out vec3 vNormal;
out vec3 vColor;

void main() {
	vNormal = aNormal;
	vColor = aColor;
	gl_Position = uProjection * uView * vec4(aPosition, 1.0);
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;
in vec3 vColor;

out vec4 fragColor;

const vec3 lightDir = normalize(vec3(0.4, 1.0, 0.6));

void main() {
	// Two-sided diffuse with a flat ambient floor; the mesh's normals
	// are outward ring proxies, so faceted shading is expected.
	float diffuse = abs(dot(normalize(vNormal), lightDir));
	vec3 lit = vColor * (0.35 + 0.65 * diffuse);
	fragColor = vec4(lit, 1.0);
}
`

// compileProgram compiles and links the viewer's shader pair.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}
