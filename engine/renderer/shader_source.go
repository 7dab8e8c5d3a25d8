package renderer

// objectShaderSource is the WGSL source for the single forward pipeline. All
// uniforms live in bind group 0; matrices arrive row-major with row-vector
// semantics, which a column-major WGSL mat4x4 load turns into the transposed
// matrix, so the shader multiplies matrix-times-vector.
const objectShaderSource = `
struct TransformationMatrix {
    wvp: mat4x4<f32>,
    world: mat4x4<f32>,
};

struct Material {
    color: vec4<f32>,
    enable_lighting: i32,
    uv_transform: mat4x4<f32>,
    shininess: f32,
};

struct DirectionalLight {
    color: vec4<f32>,
    direction: vec3<f32>,
    intensity: f32,
};

struct Camera {
    world_position: vec3<f32>,
};

@group(0) @binding(0) var<uniform> transform: TransformationMatrix;
@group(0) @binding(1) var<uniform> material: Material;
@group(0) @binding(2) var<uniform> light: DirectionalLight;
@group(0) @binding(3) var<uniform> camera: Camera;
@group(0) @binding(4) var diffuse_texture: texture_2d<f32>;
@group(0) @binding(5) var diffuse_sampler: sampler;

struct VertexInput {
    @location(0) position: vec4<f32>,
    @location(1) texcoord: vec2<f32>,
    @location(2) normal: vec3<f32>,
};

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) texcoord: vec2<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) world_position: vec3<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = transform.wvp * in.position;
    out.texcoord = in.texcoord;
    out.normal = normalize((transform.world * vec4<f32>(in.normal, 0.0)).xyz);
    out.world_position = (transform.world * in.position).xyz;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let uv = (material.uv_transform * vec4<f32>(in.texcoord, 0.0, 1.0)).xy;
    let tex_color = textureSample(diffuse_texture, diffuse_sampler, uv);
    let base = material.color * tex_color;

    if (material.enable_lighting == 0) {
        return base;
    }

    let normal = normalize(in.normal);
    let light_dir = normalize(light.direction);

    // Half-lambert diffuse term keeps back faces from going fully black.
    let n_dot_l = dot(normal, -light_dir);
    let diffuse_weight = pow(n_dot_l * 0.5 + 0.5, 2.0);
    let diffuse = base.rgb * light.color.rgb * diffuse_weight * light.intensity;

    var specular = vec3<f32>(0.0);
    if (material.shininess > 0.0) {
        let to_eye = normalize(camera.world_position - in.world_position);
        let half_vector = normalize(-light_dir + to_eye);
        let n_dot_h = max(dot(normal, half_vector), 0.0);
        specular = light.color.rgb * light.intensity * pow(n_dot_h, material.shininess);
    }

    return vec4<f32>(diffuse + specular, base.a);
}
`
