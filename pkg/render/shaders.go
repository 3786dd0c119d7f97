package render

// sceneVertexShader transforms the unit cube into a world box
const sceneVertexShader = `
#version 460 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 Normal;

void main() {
    Normal = mat3(transpose(inverse(model))) * aNormal;
    gl_Position = projection * view * model * vec4(aPos, 1.0);
}
`

// sceneFragmentShader lights a flat material with one directional light
const sceneFragmentShader = `
#version 460 core
in vec3 Normal;

uniform vec4 diffuse;
uniform vec3 lightDir;
uniform float ambient;

out vec4 FragColor;

void main() {
    float light = max(dot(normalize(Normal), normalize(lightDir)), 0.0);
    FragColor = vec4(diffuse.rgb * (ambient + (1.0 - ambient) * light), diffuse.a);
}
`

// overlayVertexShader places the unit quad in a normalized screen rectangle
const overlayVertexShader = `
#version 460 core
layout (location = 0) in vec2 aPos;

uniform vec4 rect; // x, y, width, height in [0, 1]

void main() {
    vec2 pos = rect.xy + aPos * rect.zw;
    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

const overlayFragmentShader = `
#version 460 core
uniform vec4 color;

out vec4 FragColor;

void main() {
    FragColor = color;
}
`
